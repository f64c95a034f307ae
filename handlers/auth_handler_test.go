package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func postJSON(t *testing.T, e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	e := echo.New()
	h := NewAuthHandler("test-secret")

	c, rec := postJSON(t, e, "/auth/register",
		`{"student_id":"ETS0001","full_name":"Abel Tesfaye","gender":"Male","residence_category":"Rural","password":"s3cret-pass"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var student models.Student
	require.NoError(t, database.DB.Where("student_id = ?", "ETS0001").First(&student).Error)
	require.Equal(t, models.GenderMale, student.Gender)

	c, rec = postJSON(t, e, "/auth/login", `{"id":"ETS0001","password":"s3cret-pass"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "token")
}

func TestRegisterRejectsUnhashablePassword(t *testing.T) {
	setupTestDB(t)
	e := echo.New()
	h := NewAuthHandler("test-secret")

	// bcrypt refuses passwords longer than 72 bytes; the handler must
	// surface that instead of storing an empty hash.
	long := strings.Repeat("x", 80)
	c, rec := postJSON(t, e, "/auth/register",
		`{"student_id":"ETS0002","full_name":"Test Student","gender":"Female","password":"`+long+`"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "REGISTRATION_FAILED")

	var n int64
	require.NoError(t, database.DB.Model(&models.User{}).Count(&n).Error)
	require.Zero(t, n, "no account is created on a failed hash")
}
