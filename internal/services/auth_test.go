package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/campuslib/backend/internal/registry"
)

func setupAuthConfig() {
	viper.Set("argon2.salt_length", 16)
	viper.Set("argon2.time", 1)
	viper.Set("argon2.memory", 64*1024)
	viper.Set("argon2.threads", 4)
	viper.Set("argon2.key_length", 32)
	viper.Set("jwt.secret_key", "test-secret")
	viper.Set("jwt.expiry_hours", 24)
}

func TestAuthService_Register(t *testing.T) {
	setupAuthConfig()

	service := NewAuthService(registry.NewLibrarianRegistry())

	t.Run("successful registration", func(t *testing.T) {
		req := RegisterRequest{
			Email:     "test@example.com",
			Password:  "password123",
			FirstName: "John",
			LastName:  "Doe",
		}

		body, _ := json.Marshal(req)
		r := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		service.Register(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var response AuthResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, req.Email, response.Librarian.Email)
		assert.NotEmpty(t, response.Librarian.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := RegisterRequest{
			Email:     "test@example.com",
			Password:  "password123",
			FirstName: "John",
			LastName:  "Doe",
		}

		body, _ := json.Marshal(req)
		r := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		service.Register(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer([]byte("invalid")))
		w := httptest.NewRecorder()

		service.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		body, _ := json.Marshal(RegisterRequest{Email: "not-an-email", Password: "short"})
		r := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		service.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	setupAuthConfig()

	librarians := registry.NewLibrarianRegistry()
	service := NewAuthService(librarians)

	register := func(t *testing.T, email string) {
		body, _ := json.Marshal(RegisterRequest{
			Email:     email,
			Password:  "password123",
			FirstName: "John",
			LastName:  "Doe",
		})
		r := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		service.Register(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("successful login", func(t *testing.T) {
		register(t, "login@example.com")

		body, _ := json.Marshal(LoginRequest{Email: "login@example.com", Password: "password123"})
		r := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		service.Login(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var response AuthResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "login@example.com", response.Librarian.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		register(t, "wrongpw@example.com")

		body, _ := json.Marshal(LoginRequest{Email: "wrongpw@example.com", Password: "password456"})
		r := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		service.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("account not found", func(t *testing.T) {
		body, _ := json.Marshal(LoginRequest{Email: "nonexistent@example.com", Password: "password123"})
		r := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		service.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthService_GetAccount(t *testing.T) {
	setupAuthConfig()

	librarians := registry.NewLibrarianRegistry()
	service := NewAuthService(librarians)

	body, _ := json.Marshal(RegisterRequest{
		Email:     "account@example.com",
		Password:  "password123",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	r := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	service.Register(w, r)

	var registered AuthResponse
	json.Unmarshal(w.Body.Bytes(), &registered)

	t.Run("returns the authenticated account", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/auth/account", nil)
		ctx := context.WithValue(r.Context(), "userID", registered.Librarian.ID)
		w := httptest.NewRecorder()

		service.GetAccount(w, r.WithContext(ctx))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing user id", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/auth/account", nil)
		w := httptest.NewRecorder()

		service.GetAccount(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPasswordHashing(t *testing.T) {
	setupAuthConfig()

	password := "testpassword"

	hashed, err := hashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)

	assert.True(t, verifyPassword(password, hashed))
	assert.False(t, verifyPassword("wrongpassword", hashed))
}

func TestGenerateJWT(t *testing.T) {
	setupAuthConfig()

	token, err := generateJWT("librarian-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
