package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/roles"
)

// ErrInvalidAccessCode is returned when a login code matches no role.
var ErrInvalidAccessCode = errors.New("invalid access code")

// Sessions issues and validates the portal's JWT sessions. Access codes are
// shared per role and stored only as bcrypt hashes, never as plaintext.
type Sessions struct {
	secret []byte
	codes  map[roles.Role]string
}

func NewSessions(secret string, codeHashes map[roles.Role]string) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		codes:  codeHashes,
	}
}

// Authenticate resolves an access code to a role. Higher roles are tried
// first so the admin code wins even if several hashes were misconfigured to
// the same value.
func (s *Sessions) Authenticate(accessCode string) (roles.Role, error) {
	for _, role := range []roles.Role{roles.Admin, roles.Editor, roles.Viewer} {
		hash := s.codes[role]
		if hash == "" {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(accessCode)); err == nil {
			return role, nil
		}
	}
	return "", ErrInvalidAccessCode
}

// GenerateJWT signs a session token for the given role and display name.
func (s *Sessions) GenerateJWT(role roles.Role, userName string) (string, error) {
	claims := jwt.MapClaims{
		"role":     role.String(),
		"userName": userName,
		"exp":      time.Now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GetUserNameFromContext reads the display name the JWT middleware stored.
func GetUserNameFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get("userName")
	if !exists {
		return "", fmt.Errorf("no user name in request context")
	}
	userName, ok := value.(string)
	if !ok || userName == "" {
		return "", fmt.Errorf("user name claim is not a string")
	}
	return userName, nil
}
