package paymentRoutes

import (
	paymentControllers "coursehub/controllers/payment"
	"coursehub/middleware"
	paymentValidators "coursehub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the order lifecycle routes
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-order", middleware.JWTMiddleware, paymentValidators.CreateOrder(), paymentControllers.CreateOrder)
	app.Post("/verify-payment", middleware.JWTMiddleware, paymentValidators.VerifyPayment(), paymentControllers.VerifyPayment)
}
