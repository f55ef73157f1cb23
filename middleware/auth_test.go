package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmapp/model"
	"pharmapp/services"
	"pharmapp/store"
	"pharmapp/store/storetest"
)

func authTestRouter(users store.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AccessTokenMiddleware(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.MustGet("userId")})
	})
	return router
}

func TestAccessTokenMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	validToken, err := services.CreateAccessToken("user-1", "tech@x.com")
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		setupMock      func(*storetest.MockUserStore)
		expectedStatus int
	}{
		{
			name:           "missing header",
			header:         "",
			setupMock:      func(_ *storetest.MockUserStore) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			header:         "Token abc",
			setupMock:      func(_ *storetest.MockUserStore) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			header:         "Bearer not-a-token",
			setupMock:      func(_ *storetest.MockUserStore) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "user vanished",
			header: "Bearer " + validToken,
			setupMock: func(m *storetest.MockUserStore) {
				m.On("GetUserByID", mock.Anything, "user-1").Return(nil, store.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer " + validToken,
			setupMock: func(m *storetest.MockUserStore) {
				m.On("GetUserByID", mock.Anything, "user-1").
					Return(&model.User{UserID: "user-1", Email: "tech@x.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(storetest.MockUserStore)
			tt.setupMock(users)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			authTestRouter(users).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			users.AssertExpectations(t)
		})
	}
}
