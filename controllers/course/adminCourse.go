package courseController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// AdminGetAllCourses lists the full catalog for the admin panel
func AdminGetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	// Get validated request data
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		Price       int    `json:"price" form:"price"`
		Thumbnail   string `json:"thumbnail" form:"thumbnail"`
		VideoURL    string `json:"videoUrl" form:"videoUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Thumbnail:   reqData.Thumbnail,
		VideoURL:    reqData.VideoURL,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}
