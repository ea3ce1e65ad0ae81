package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"testinesia-be/internal/bootstrap"
	"testinesia-be/internal/config"
	"testinesia-be/internal/dto"
	"testinesia-be/internal/model"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/server"
	"testinesia-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestUserAuthFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed a verified user directly; registration needs a live SMTP server.
	password := "password123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	userId := uuid.New()
	email := fmt.Sprintf("authflow-%s@example.com", uuid.New().String()[:8])
	user := model.User{
		Id:           userId,
		Name:         "Auth Flow User",
		Email:        email,
		Phone:        fmt.Sprintf("+6281%09d", time.Now().UnixNano()%1_000_000_000),
		PasswordHash: string(hash),
		IsVerified:   true,
	}
	db.Create(&user)
	defer db.Delete(&model.User{}, userId)

	var accessToken string

	t.Run("Sign in success", func(t *testing.T) {
		body, _ := json.Marshal(dto.SignInRequest{Email: email, Password: password})
		req := httptest.NewRequest("POST", "/api/auth/v1/sign-in", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[dto.SignInResponse]
		json.NewDecoder(resp.Body).Decode(&result)

		assert.Equal(t, "success", result.Status)
		assert.NotEmpty(t, result.Data.AccessToken)
		assert.Equal(t, email, result.Data.Email)
		accessToken = result.Data.AccessToken
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		body, _ := json.Marshal(dto.SignInRequest{Email: email, Password: "wrongpassword"})
		req := httptest.NewRequest("POST", "/api/auth/v1/sign-in", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Profile with token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[dto.UserProfileResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, email, result.Data.Email)
	})

	t.Run("Profile without token rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/v1/profile", nil)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("New sign-in invalidates old session", func(t *testing.T) {
		body, _ := json.Marshal(dto.SignInRequest{Email: email, Password: password})
		req := httptest.NewRequest("POST", "/api/auth/v1/sign-in", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[dto.SignInResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		newToken := result.Data.AccessToken
		assert.NotEmpty(t, newToken)

		// Old token no longer matches the stored session.
		req = httptest.NewRequest("GET", "/api/user/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 401, resp.StatusCode)

		accessToken = newToken
	})

	t.Run("Sign out clears the session", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/v1/sign-out", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		req = httptest.NewRequest("GET", "/api/user/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
