package courseController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseRoutes "coursehub/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-jwt-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Purchase{},
		&models.LoginTracking{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	return app
}

func createUser(t *testing.T, email, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: "Test User", Email: email, Role: role, Password: string(hashed)}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func authedRequest(t *testing.T, method, path string, payload interface{}, user models.User) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.IsAdmin())
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCatalogIsPublic(t *testing.T) {
	app := setupTestApp(t)

	course := models.Course{Title: "Go from Scratch", Description: "Basics", Price: 500}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "Go from Scratch", courses[0].(map[string]interface{})["title"])
}

func TestAdminCreateCourse(t *testing.T) {
	app := setupTestApp(t)

	admin := createUser(t, "admin@example.com", "ADMIN")

	payload := fiber.Map{
		"title":       "Advanced Go",
		"description": "Concurrency and friends",
		"price":       1500,
		"thumbnail":   "https://cdn.example.com/go.png",
		"videoUrl":    "https://cdn.example.com/go.mp4",
	}

	resp, err := app.Test(authedRequest(t, "POST", "/admin/courses", payload, admin), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, database.Database.Db.Where("title = ?", "Advanced Go").First(&course).Error)
	assert.Equal(t, 1500, course.Price)
	assert.Equal(t, "https://cdn.example.com/go.mp4", course.VideoURL)
}

func TestAdminCreateCourseForbiddenForUser(t *testing.T) {
	app := setupTestApp(t)

	user := createUser(t, "user@example.com", "USER")

	payload := fiber.Map{"title": "Advanced Go", "description": "x", "price": 1500}
	resp, err := app.Test(authedRequest(t, "POST", "/admin/courses", payload, user), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRoleIsCheckedAgainstUserRecord(t *testing.T) {
	app := setupTestApp(t)

	// Token claims admin but the stored role says USER; the record wins
	user := createUser(t, "user@example.com", "USER")
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, true)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminCreateCourseValidation(t *testing.T) {
	app := setupTestApp(t)

	admin := createUser(t, "admin@example.com", "ADMIN")

	payload := fiber.Map{"title": "Go", "description": "", "price": 0, "thumbnail": "not a url"}
	resp, err := app.Test(authedRequest(t, "POST", "/admin/courses", payload, admin), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDashboardListsOnlyPaidCourses(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	user := createUser(t, "buyer@example.com", "USER")

	paid := models.Course{Title: "Paid Course", Price: 500}
	pending := models.Course{Title: "Pending Course", Price: 700}
	require.NoError(t, db.Create(&paid).Error)
	require.NoError(t, db.Create(&pending).Error)

	require.NoError(t, db.Create(&models.Purchase{
		UserID: user.ID, CourseID: paid.ID, OrderID: "order_paid", PaymentID: "pay_1", Status: models.PurchaseStatusPaid,
	}).Error)
	require.NoError(t, db.Create(&models.Purchase{
		UserID: user.ID, CourseID: pending.ID, OrderID: "order_pending", Status: models.PurchaseStatusCreated,
	}).Error)

	resp, err := app.Test(authedRequest(t, "GET", "/dashboard", nil, user), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	courses := body["data"].(map[string]interface{})["purchasedCourses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "Paid Course", courses[0].(map[string]interface{})["title"])
}
