package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/generated/servers"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// Claims is the bearer token payload issued by the platform's auth service.
// FranchiseID is empty for users without a franchise assignment.
type Claims struct {
	jwt.RegisteredClaims
	Role        string `json:"role"`
	FranchiseID string `json:"franchise_id,omitempty"`
}

var errMissingBearer = errors.New("missing bearer token")

// Authenticator validates HS256 bearer tokens and stores the caller's
// access.Identity on the echo context.
type Authenticator struct {
	secret  []byte
	skipper func(c echo.Context) bool
}

func NewAuthenticator(secret []byte, skipper func(c echo.Context) bool) *Authenticator {
	if skipper == nil {
		skipper = func(echo.Context) bool { return false }
	}
	return &Authenticator{secret: secret, skipper: skipper}
}

func (a *Authenticator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if a.skipper(c) {
			return next(c)
		}

		identity, err := a.Authenticate(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, servers.Error{
				Code:    CodeUnauthorized,
				Message: err.Error(),
			})
		}

		c.Set(identityContextKey, identity)
		return next(c)
	}
}

// Authenticate turns an Authorization header value into an identity.
func (a *Authenticator) Authenticate(header string) (access.Identity, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return access.Identity{}, errMissingBearer
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (interface{}, error) {
		if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return access.Identity{}, errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return access.Identity{}, errors.New("token has no subject")
	}

	role, err := access.ParseRole(claims.Role)
	if err != nil {
		return access.Identity{}, errors.New("token has an unknown role")
	}

	return access.NewIdentity(claims.Subject, role, claims.FranchiseID)
}

// IdentityFrom returns the identity stored by the Authenticator.
func IdentityFrom(c echo.Context) (access.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(access.Identity)
	return identity, ok
}

// SignToken issues a token accepted by Authenticator. Used by tests and local tooling.
func SignToken(secret []byte, subject string, role access.Role, franchiseID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:        role.String(),
		FranchiseID: franchiseID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
