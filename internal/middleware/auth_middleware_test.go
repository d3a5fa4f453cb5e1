package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/app/models/dto"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAuthMiddleware(jwtService)

	protected := router.Group("/", mw.JWTAuth())
	protected.GET("/me", func(c *gin.Context) {
		id, _ := StudentIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"studentId": id})
	})
	protected.POST("/admin", mw.RoleRequired(string(models.RoleCoordinator)), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "hirequest.test",
	})
}

func mintToken(t *testing.T, svc *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := svc.GenerateToken(&models.Student{
		ID:    7,
		Email: "asha.verma@cuchd.in",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := newTestJWTService()
	router := newTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/me", "Bearer "+mintToken(t, svc, models.RoleStudent))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body["studentId"])
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newTestRouter(newTestJWTService())

	rec := doRequest(router, http.MethodGet, "/me", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeError(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	svc := newTestJWTService()
	router := newTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/me", mintToken(t, svc, models.RoleStudent))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret-key",
		TokenExp:  -time.Minute,
	})
	router := newTestRouter(newTestJWTService())

	rec := doRequest(router, http.MethodGet, "/me", "Bearer "+mintToken(t, expired, models.RoleStudent))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeError(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestJWTAuth_ForgedToken(t *testing.T) {
	forger := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "some-other-secret",
		TokenExp:  time.Hour,
	})
	router := newTestRouter(newTestJWTService())

	rec := doRequest(router, http.MethodGet, "/me", "Bearer "+mintToken(t, forger, models.RoleStudent))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleRequired(t *testing.T) {
	svc := newTestJWTService()
	router := newTestRouter(svc)

	t.Run("coordinator allowed", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/admin", "Bearer "+mintToken(t, svc, models.RoleCoordinator))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("student denied", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/admin", "Bearer "+mintToken(t, svc, models.RoleStudent))
		require.Equal(t, http.StatusForbidden, rec.Code)

		resp := decodeError(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
	})
}
