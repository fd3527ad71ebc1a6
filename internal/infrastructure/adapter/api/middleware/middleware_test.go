package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/security"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/nerdytips/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/nerdytips/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRecovery(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(f map[string]any) bool {
		return f["path"] == "/boom" && f["error"] == "kaboom"
	})).Once()

	router := gin.New()
	router.Use(Recovery(mockLogger))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, domainerr.CodeInternalServer, body.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("Generates an id when none is sent", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/id", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Keeps a well-formed incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, incoming)

		w := serve(router, req)
		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
		assert.Equal(t, incoming, w.Body.String())
	})

	t.Run("Replaces a malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "<script>")

		w := serve(router, req)
		assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	t.Run("Success is logged at info with the request id", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(f map[string]any) bool {
			id, _ := f["request_id"].(string)
			return f["status"] == http.StatusOK && f["path"] == "/ok" && id != "" && f["status_text"] == "Success"
		})).Once()

		router := gin.New()
		router.Use(RequestID(), Logger(mockLogger))
		router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		serve(router, httptest.NewRequest(http.MethodGet, "/ok", nil))
	})

	t.Run("Client errors are logged at warn with the user id", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Request processed", mock.MatchedBy(func(f map[string]any) bool {
			return f["status"] == http.StatusBadRequest && f["user_id"] == "user-1"
		})).Once()

		router := gin.New()
		router.Use(Logger(mockLogger))
		router.GET("/bad", func(c *gin.Context) {
			c.Set(UserIDKey, "user-1")
			c.Status(http.StatusBadRequest)
		})

		serve(router, httptest.NewRequest(http.MethodGet, "/bad", nil))
	})

	t.Run("Server errors are logged at error", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Error("Request processed", mock.Anything).Once()

		router := gin.New()
		router.Use(Logger(mockLogger))
		router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

		serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
	})

	t.Run("Heartbeat is not logged", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		router := gin.New()
		router.Use(Logger(mockLogger))
		router.GET(HeartbeatPath, func(c *gin.Context) { c.Status(http.StatusOK) })

		serve(router, httptest.NewRequest(http.MethodGet, HeartbeatPath, nil))
	})
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Informational", statusText(101))
	assert.Equal(t, "Success", statusText(204))
	assert.Equal(t, "Redirect", statusText(302))
	assert.Equal(t, "Client Error", statusText(404))
	assert.Equal(t, "Server Error", statusText(500))
}

func TestAuth(t *testing.T) {
	newRouter := func(auth *usecasemocks.MockAuthUseCase) *gin.Engine {
		router := gin.New()
		router.GET("/private", Auth(auth), func(c *gin.Context) {
			c.String(http.StatusOK, UserID(c))
		})
		return router
	}

	t.Run("Valid bearer token", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Verify("good-token").Return(&security.Identity{UserID: "user-1", Email: "a@b.co"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		w := serve(newRouter(auth), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("Scheme is case-insensitive", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Verify("good-token").Return(&security.Identity{UserID: "user-1"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "bearer good-token")

		w := serve(newRouter(auth), req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Rejected token", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Verify("expired").Return(nil, domainerr.ErrUnauthorized).Once()

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer expired")

		w := serve(newRouter(auth), req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", decodeError(t, w).Error)
	})

	for name, header := range map[string]string{
		"Missing header":      "",
		"Wrong scheme":        "Basic dXNlcjpwYXNz",
		"Bearer without body": "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			auth := usecasemocks.NewMockAuthUseCase(t)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			w := serve(newRouter(auth), req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:5173"}))
	router.GET("/api/predictions", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/predictions", nil)
		req.Header.Set("Origin", "http://localhost:5173")

		w := serve(router, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/predictions", nil)
		req.Header.Set("Origin", "http://evil.example")

		w := serve(router, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("Burst then 429 per client", func(t *testing.T) {
		limiter := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1, Burst: 2})

		router := gin.New()
		router.POST("/generate", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		request := func(ip string) int {
			req := httptest.NewRequest(http.MethodPost, "/generate", nil)
			req.RemoteAddr = ip + ":1234"
			return serve(router, req).Code
		}

		assert.Equal(t, http.StatusOK, request("10.0.0.1"))
		assert.Equal(t, http.StatusOK, request("10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1"))
		assert.Equal(t, http.StatusOK, request("10.0.0.2"))
	})

	t.Run("Tokens refill over time", func(t *testing.T) {
		now := time.Date(2026, 2, 23, 20, 0, 0, 0, time.UTC)
		limiter := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, Burst: 1})
		limiter.now = func() time.Time { return now }

		assert.True(t, limiter.allow("10.0.0.1"))
		assert.False(t, limiter.allow("10.0.0.1"))

		now = now.Add(time.Second)
		assert.True(t, limiter.allow("10.0.0.1"))
	})

	t.Run("Idle visitors are evicted", func(t *testing.T) {
		now := time.Date(2026, 2, 23, 20, 0, 0, 0, time.UTC)
		limiter := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 10, Burst: 1, TTL: time.Minute})
		limiter.now = func() time.Time { return now }

		limiter.allow("10.0.0.1")
		now = now.Add(30 * time.Second)
		limiter.allow("10.0.0.2")

		now = now.Add(45 * time.Second)
		limiter.cleanup()
		assert.Equal(t, 1, limiter.size())
	})

	t.Run("Run stops with its context", func(t *testing.T) {
		limiter := NewRateLimiter(RateLimiterConfig{CleanupInterval: time.Millisecond})
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			limiter.Run(ctx)
			close(done)
		}()

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("rate limiter cleanup did not stop")
		}
	})
}
