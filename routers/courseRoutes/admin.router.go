package courseRoutes

import (
	courseControllers "coursehub/controllers/course"
	"coursehub/middleware"
	courseValidators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the admin catalog management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/", courseControllers.AdminGetAllCourses)
	adminGroup.Post("/courses", courseValidators.CreateCourseAdmin(), courseControllers.AdminCreateCourse)
}
