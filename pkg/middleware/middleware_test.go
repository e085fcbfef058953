package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "healthtrack/pkg/memcache"
	"healthtrack/pkg/utils"
)

func newTestEngine(tokens *utils.TokenManager, revoked mem.RevokedTokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	api := r.Group("/api", JWTAuthMiddleware(tokens, revoked))
	api.GET("/whoami", func(c *gin.Context) {
		id, _ := TokenInfo(c)
		c.JSON(http.StatusOK, gin.H{"userId": MustUserID(c), "tokenId": id})
	})
	api.GET("/doctors-only", RoleMiddleware("doctor", "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	revoked := mem.NewRevokedTokens()
	r := newTestEngine(tokens, revoked)

	w := get(r, "/api/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"message"`)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/whoami", "garbage").Code)

	token, exp, err := tokens.CreateToken(7, "patient")
	require.NoError(t, err)
	w = get(r, "/api/whoami", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	revoked.Revoke(claims.ID, exp)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/whoami", token).Code)
}

func TestRoleMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	r := newTestEngine(tokens, mem.NewRevokedTokens())

	patient, _, _ := tokens.CreateToken(1, "patient")
	doctor, _, _ := tokens.CreateToken(2, "doctor")

	assert.Equal(t, http.StatusForbidden, get(r, "/api/doctors-only", patient).Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/doctors-only", doctor).Code)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://app.test"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://app.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.test", w.Header().Get("Access-Control-Allow-Origin"))
}
