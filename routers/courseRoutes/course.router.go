package courseRoutes

import (
	courseControllers "coursehub/controllers/course"
	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and user dashboard routes
func SetupCourseRoutes(app *fiber.App) {
	app.Get("/", courseControllers.GetAllCourses)
	app.Get("/dashboard", middleware.JWTMiddleware, courseControllers.Dashboard)
}
