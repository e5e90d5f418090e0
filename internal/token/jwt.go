package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSignature is returned for tokens that are malformed or were not
// signed with the issuer's secret.
var ErrInvalidSignature = errors.New("invalid token signature")

// dateLayout matches the millisecond ISO-8601 form browsers emit for dates.
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

// Claims is the token payload. There is no expiry: a token stays valid for as
// long as the signing secret does not change.
type Claims struct {
	Username    string `json:"username"`
	Date        string `json:"date"`
	SecretToken string `json:"secretToken"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with one shared HMAC secret.
type Issuer struct {
	secret []byte
	marker string
	now    func() time.Time
}

// NewIssuer returns an Issuer that embeds marker as secretToken in every
// token it signs.
func NewIssuer(secret, marker string) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		marker: marker,
		now:    time.Now,
	}
}

func (i *Issuer) IssueToken(username string) (string, error) {
	now := i.now().UTC()
	c := Claims{
		Username:    username,
		Date:        now.Format(dateLayout),
		SecretToken: i.marker,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and decodes the payload. Neither the
// issue date nor any freshness is checked.
func (i *Issuer) VerifyToken(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, jwt.ErrTokenInvalidClaims)
}
