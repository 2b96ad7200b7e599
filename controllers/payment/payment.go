package paymentController

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateOrder creates a remote payment order and records a pending purchase.
// Repeated calls for the same course/user append further pending rows; the
// existing ones are never touched.
func CreateOrder(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedOrder").(*struct {
		CourseID uint `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up course"})
	}

	receipt := fmt.Sprintf("course_%d_user_%d", course.ID, userId)

	// Amount is charged in minor units
	order, rawOrder, err := utils.CreateRazorpayOrder(course.Price*100, config.AppConfig.Currency, receipt)
	if err != nil {
		if errors.Is(err, utils.ErrGatewayNotConfigured) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Razorpay is not configured. Add API keys in .env",
			})
		}
		log.Printf("Error creating gateway order: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  "Unable to create order",
			"detail": err.Error(),
		})
	}

	purchase := models.Purchase{
		UserID:          userId,
		CourseID:        course.ID,
		OrderID:         order.ID,
		PaymentID:       "",
		Status:          models.PurchaseStatusCreated,
		Receipt:         receipt,
		GatewayResponse: rawOrder,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&purchase).Error
	}); err != nil {
		log.Printf("Error saving purchase: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record purchase"})
	}

	return c.JSON(fiber.Map{
		"order":  order,
		"course": course,
	})
}

// VerifyPayment checks the gateway callback signature and marks the matching
// purchase as paid
func VerifyPayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Signature check comes first; no state is touched on mismatch
	valid := utils.VerifyRazorpaySignature(
		reqData.RazorpayOrderID,
		reqData.RazorpayPaymentID,
		reqData.RazorpaySignature,
		config.AppConfig.RazorpayKeySecret,
	)
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Payment verification failed",
		})
	}

	db := database.Database.Db

	// The purchase must belong to the caller as well as match the order id
	var purchase models.Purchase
	if err := db.
		Where("order_id = ? AND user_id = ? AND is_deleted = ?", reqData.RazorpayOrderID, userId, false).
		First(&purchase).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Purchase record not found",
		})
	}

	purchase.PaymentID = reqData.RazorpayPaymentID
	purchase.Status = models.PurchaseStatusPaid

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&purchase).Error
	}); err != nil {
		log.Printf("Error updating purchase %d: %v", purchase.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update purchase",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment verified. Course unlocked!",
	})
}
