package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	signed, claims, err := GenerateToken(testSecret, "user-1", "alice", TokenTypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if claims.ID == "" {
		t.Error("expected a jti on every token")
	}

	parsed, err := ParseToken(testSecret, TokenTypeAccess, signed)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if parsed.UserID != "user-1" || parsed.Username != "alice" {
		t.Errorf("claims not round-tripped: %+v", parsed)
	}
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	signed, _, err := GenerateToken(testSecret, "user-1", "alice", TokenTypeRefresh, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(testSecret, TokenTypeAccess, signed); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signed, _, err := GenerateToken(testSecret, "user-1", "alice", TokenTypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken("other-secret", TokenTypeAccess, signed); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	signed, _, err := GenerateToken(testSecret, "user-1", "alice", TokenTypeAccess, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(testSecret, TokenTypeAccess, signed); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewJWTAuth(&JWTConfig{Secret: testSecret}))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "username": GetUsername(c)})
	})

	// Missing header.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	// Refresh token must not pass as access credential.
	refresh, _, err := GenerateToken(testSecret, "user-1", "alice", TokenTypeRefresh, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with refresh token, got %d", w.Code)
	}

	// Valid access token passes through and exposes the identity.
	access, _, err := GenerateToken(testSecret, "user-1", "alice", TokenTypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with access token, got %d: %s", w.Code, w.Body.String())
	}
}
