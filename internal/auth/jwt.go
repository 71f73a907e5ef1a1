package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawerflow/question-service/pkg/ctxutil"
)

const maxSubjectLength = 36

// JWTManager mints and validates HS256 access tokens signed with a shared
// secret. Whatever issues tokens for this service must sign them with the
// same secret; asymmetric tokens (RS256 from a JWKS endpoint) are rejected.
type JWTManager struct {
	secret    []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security. An empty audience
// disables the audience check.
func NewJWTManager(secret, issuer, audience string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		audience:  audience,
		accessTTL: accessTTL,
	}
}

// accessClaims carries the OpenID Connect profile claims the service reads.
type accessClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for the given identity.
func (m *JWTManager) GenerateAccessToken(id ctxutil.Identity) (string, error) {
	if id.UserID == "" {
		return "", errors.New("subject is empty")
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: id.DisplayName,
	}
	if m.audience != "" {
		claims.Audience = jwt.ClaimStrings{m.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns the
// caller identity. The display name falls back to preferred_username and
// then to the subject.
func (m *JWTManager) ValidateAccessToken(tokenString string) (ctxutil.Identity, error) {
	if tokenString == "" {
		return ctxutil.Identity{}, errors.New("token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, opts...)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return ctxutil.Identity{}, errors.New("invalid token claims")
	}

	if claims.Subject == "" {
		return ctxutil.Identity{}, errors.New("token has no subject")
	}
	if len(claims.Subject) > maxSubjectLength {
		return ctxutil.Identity{}, fmt.Errorf("subject longer than %d characters", maxSubjectLength)
	}

	name := claims.Name
	if name == "" {
		name = claims.PreferredUsername
	}
	if name == "" {
		name = claims.Subject
	}

	return ctxutil.Identity{UserID: claims.Subject, DisplayName: name}, nil
}
