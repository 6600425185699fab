package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/middleware"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func generateTestKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return privateKey, string(publicPEM)
}

func signTestToken(t *testing.T, privateKey *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(privateKey)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate_APIKey(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key-one", "key-two"}}

	result := middleware.Authenticate("apikey key-two", cfg)

	assert.True(t, result.Success)
	assert.Equal(t, "apikey", result.AuthType)
	assert.Empty(t, result.AuthSubject)
	assert.Nil(t, result.Claims)
}

func TestAuthenticate_APIKeyInvalid(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key-one"}}

	result := middleware.Authenticate("apikey wrong", cfg)

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "invalid API key")
}

func TestAuthenticate_NoAPIKeysConfigured(t *testing.T) {
	result := middleware.Authenticate("apikey anything", middleware.AuthConfig{})

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "no API keys configured")
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	result := middleware.Authenticate("", middleware.AuthConfig{APIKeys: []string{"key"}})

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "missing Authorization header")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	result := middleware.Authenticate("just-a-token", middleware.AuthConfig{APIKeys: []string{"key"}})

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "invalid Authorization header format")
}

func TestAuthenticate_UnsupportedScheme(t *testing.T) {
	result := middleware.Authenticate("basic dXNlcjpwYXNz", middleware.AuthConfig{APIKeys: []string{"key"}})

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "unsupported authorization type")
}

func TestAuthenticate_JWT(t *testing.T) {
	privateKey, publicPEM := generateTestKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	signed := signTestToken(t, privateKey, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("bearer "+signed, cfg)

	assert.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, "42", result.AuthSubject)
	require.NotNil(t, result.Claims)
	assert.Equal(t, "42", result.Claims.Subject)
}

func TestAuthenticate_JWTExpired(t *testing.T) {
	privateKey, publicPEM := generateTestKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	signed := signTestToken(t, privateKey, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	result := middleware.Authenticate("bearer "+signed, cfg)

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "expired")
}

func TestAuthenticate_JWTNotYetValid(t *testing.T) {
	privateKey, publicPEM := generateTestKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	signed := signTestToken(t, privateKey, jwt.RegisteredClaims{
		Subject:   "42",
		NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
	})

	result := middleware.Authenticate("bearer "+signed, cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_JWTNoPublicKeyConfigured(t *testing.T) {
	privateKey, _ := generateTestKey(t)

	signed := signTestToken(t, privateKey, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("bearer "+signed, middleware.AuthConfig{})

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "JWT public key not configured")
}

func TestAuthenticate_JWTWrongKey(t *testing.T) {
	privateKey, _ := generateTestKey(t)
	_, otherPublicPEM := generateTestKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: otherPublicPEM}

	signed := signTestToken(t, privateKey, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("bearer "+signed, cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_JWTRejectsHMAC(t *testing.T) {
	_, publicPEM := generateTestKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	result := middleware.Authenticate("bearer "+signed, cfg)

	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "unexpected signing method")
}

func TestAuthenticate_JWTPKCS1PublicKey(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der := x509.MarshalPKCS1PublicKey(&privateKey.PublicKey)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PUBLIC KEY", Bytes: der})
	cfg := middleware.AuthConfig{JWTPublicKey: string(publicPEM)}

	signed := signTestToken(t, privateKey, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("bearer "+signed, cfg)

	assert.True(t, result.Success)
	assert.Equal(t, "7", result.AuthSubject)
}

func TestAuth_SetsContextKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	privateKey, publicPEM := generateTestKey(t)
	cfg := middleware.AuthConfig{
		JWTPublicKey: publicPEM,
		APIKeys:      []string{"service-key"},
	}

	var gotAuthType, gotSubject string
	router := gin.New()
	router.GET("/probe", middleware.Auth(cfg), func(c *gin.Context) {
		gotAuthType = ""
		gotSubject = ""
		if v, ok := c.Get(middleware.AUTH_TYPE_KEY); ok {
			gotAuthType = v.(string)
		}
		if v, ok := c.Get(middleware.AUTH_SUBJECT_KEY); ok {
			gotSubject = v.(string)
		}
		c.Status(http.StatusNoContent)
	})

	signed := signTestToken(t, privateKey, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "bearer "+signed)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "jwt", gotAuthType)
	assert.Equal(t, "42", gotSubject)

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "apikey service-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "apikey", gotAuthType)
	assert.Empty(t, gotSubject)
}

func TestAuth_RejectsWithoutHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe", middleware.Auth(middleware.AuthConfig{APIKeys: []string{"key"}}), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
