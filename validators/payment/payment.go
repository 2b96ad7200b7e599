package paymentValidator

import (
	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder validates the order creation request
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}

// VerifyPayment validates the gateway callback payload
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RazorpayOrderID   string `json:"razorpay_order_id"`
			RazorpayPaymentID string `json:"razorpay_payment_id"`
			RazorpaySignature string `json:"razorpay_signature"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RazorpayOrderID == "" {
			errors["razorpay_order_id"] = "Order id is required!"
		}
		if reqData.RazorpayPaymentID == "" {
			errors["razorpay_payment_id"] = "Payment id is required!"
		}
		if reqData.RazorpaySignature == "" {
			errors["razorpay_signature"] = "Signature is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
