package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setup          func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful registration",
			body: map[string]interface{}{"username": "alice", "password": "sekret99"},
			setup: func(svc *MockAuthService) {
				svc.On("Register", mock.Anything, "alice", "sekret99").Return(&model.User{Username: "alice"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing password",
			body:           map[string]interface{}{"username": "alice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			body:           map[string]interface{}{"username": "alice", "password": "abc"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			body: map[string]interface{}{"username": "alice", "password": "sekret99"},
			setup: func(svc *MockAuthService) {
				svc.On("Register", mock.Anything, "alice", "sekret99").Return(nil, service.ErrDuplicateUser)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			if tt.setup != nil {
				tt.setup(svc)
			}

			r := setupRouter()
			r.POST("/v1/auth/register", NewAuthHandler(svc).Register)

			payload, _ := sonic.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "alice", "sekret99").Return("token-value", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "alice", "sekret99").Return("", service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "backend failure",
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "alice", "sekret99").Return("", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			tt.setup(svc)

			r := setupRouter()
			r.POST("/v1/auth/login", NewAuthHandler(svc).Login)

			payload, _ := sonic.Marshal(map[string]string{"username": "alice", "password": "sekret99"})
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything, "the-token").Return(nil)

	r := setupRouter()
	r.POST("/v1/auth/logout", NewAuthHandler(svc).Logout)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
