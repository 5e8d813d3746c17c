package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/roles"
)

func hash(t *testing.T, code string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func testSessions(t *testing.T) *Sessions {
	return NewSessions("test-secret", map[roles.Role]string{
		roles.Viewer: hash(t, "viewer-code"),
		roles.Editor: hash(t, "editor-code"),
		roles.Admin:  hash(t, "admin-code"),
	})
}

func TestAuthenticateResolvesRole(t *testing.T) {
	sessions := testSessions(t)

	tests := []struct {
		name     string
		code     string
		expected roles.Role
		wantErr  bool
	}{
		{"viewer code", "viewer-code", roles.Viewer, false},
		{"editor code", "editor-code", roles.Editor, false},
		{"admin code", "admin-code", roles.Admin, false},
		{"wrong code", "guessing", "", true},
		{"empty code", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := sessions.Authenticate(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAccessCode)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestAuthenticateSkipsUnconfiguredRoles(t *testing.T) {
	sessions := NewSessions("test-secret", map[roles.Role]string{
		roles.Admin: hash(t, "admin-code"),
	})

	_, err := sessions.Authenticate("viewer-code")
	assert.ErrorIs(t, err, ErrInvalidAccessCode)
}

func TestJWTRoundTripThroughMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := testSessions(t)

	token, err := sessions.GenerateJWT(roles.Editor, "Marek")
	assert.NoError(t, err)

	router := gin.New()
	group := router.Group("/api")
	group.Use(sessions.JWTMiddleware())
	group.GET("/whoami", func(c *gin.Context) {
		userName, err := GetUserNameFromContext(c)
		assert.NoError(t, err)
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"userName": userName, "role": role})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Marek")
	assert.Contains(t, w.Body.String(), "editor")
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := testSessions(t)

	router := gin.New()
	router.GET("/api/ping", sessions.JWTMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/ping", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthorizeEnforcesHierarchy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		role       string
		required   roles.Role
		wantStatus int
	}{
		{"admin can do editor work", "admin", roles.Editor, http.StatusOK},
		{"editor can do editor work", "editor", roles.Editor, http.StatusOK},
		{"viewer cannot edit", "viewer", roles.Editor, http.StatusForbidden},
		{"editor cannot admin", "editor", roles.Admin, http.StatusForbidden},
		{"unknown role is rejected", "superuser", roles.Viewer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/guarded",
				func(c *gin.Context) { c.Set("role", tt.role) },
				Authorize(tt.required),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
