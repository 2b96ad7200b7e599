package authRoutes

import (
	authControllers "coursehub/controllers/auth"
	"coursehub/middleware"
	authValidators "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/signup", authValidators.Signup(), authControllers.Signup)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Post("/logout", authControllers.Logout)
	app.Get("/login/history", authValidators.LoginHistoryList(), middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
