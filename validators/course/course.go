package courseValidator

import (
	"coursehub/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseAdmin validates the admin course creation form
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" form:"title"`
			Description string `json:"description" form:"description"`
			Price       int    `json:"price" form:"price"`
			Thumbnail   string `json:"thumbnail" form:"thumbnail"`
			VideoURL    string `json:"videoUrl" form:"videoUrl"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		// Validate Price
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		// Thumbnail and video URL are optional but must be well-formed when present
		if err := validate.Var(reqData.Thumbnail, "omitempty,url"); err != nil {
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		}
		if err := validate.Var(reqData.VideoURL, "omitempty,url"); err != nil {
			errors["videoUrl"] = "Video URL must be a valid URL!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
