package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispute-resolution-engine/config"
	"dispute-resolution-engine/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jwtCfg = config.JWTConfig{Secret: "test-secret", Issuer: "dispute-engine"}

func testActor() domain.Actor {
	return domain.Actor{ID: "USR-3001", Name: "Quang Huy", Role: domain.RoleRiskAnalyst}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString(CtxRequestID))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_HonorsInbound(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestIdentity_ValidToken(t *testing.T) {
	token, err := SignActorToken(jwtCfg, testActor(), time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Identity(jwtCfg, zerolog.Nop()))
	r.GET("/me", func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		require.True(t, ok)
		assert.Equal(t, "USR-3001", actor.ID)
		assert.Equal(t, domain.RoleRiskAnalyst, actor.Role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentity_MissingHeader(t *testing.T) {
	r := gin.New()
	r.Use(Identity(jwtCfg, zerolog.Nop()))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentity_WrongSecret(t *testing.T) {
	token, err := SignActorToken(config.JWTConfig{Secret: "other", Issuer: "dispute-engine"}, testActor(), time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Identity(jwtCfg, zerolog.Nop()))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentity_ExpiredToken(t *testing.T) {
	token, err := SignActorToken(jwtCfg, testActor(), -time.Minute)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Identity(jwtCfg, zerolog.Nop()))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecovery_CatchesPanic(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}
