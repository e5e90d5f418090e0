package token

import (
	"encoding/base64"
	"errors"
)

const (
	// DefaultSecret signs every token. It is shared by issuer and verifier
	// and offers no real protection.
	DefaultSecret = "actuallyasecret"
	// Marker is carried in each token and compared on redemption.
	Marker = "wearegw"
)

var ErrNotAllowed = errors.New("username not allowed")

// DefaultAllowList holds the usernames that may request a token.
var DefaultAllowList = []string{
	"milad.amini@griffiths-waite.co.uk",
	"mark.elbre@griffiths-waite.co.uk",
	"om.patel@griffiths-waite.co.uk",
	"maha.hussain@griffiths-waite.co.uk",
	"dan.beglin@griffiths-waite.co.uk",
}

type Service struct {
	issuer  *Issuer
	allowed map[string]struct{}
	marker  string
}

func NewService(issuer *Issuer, allowList []string) *Service {
	allowed := make(map[string]struct{}, len(allowList))
	for _, u := range allowList {
		allowed[u] = struct{}{}
	}
	return &Service{
		issuer:  issuer,
		allowed: allowed,
		marker:  issuer.marker,
	}
}

// Authorize reports ErrNotAllowed unless username is on the allow-list. The
// comparison is exact.
func (s *Service) Authorize(username string) error {
	if _, ok := s.allowed[username]; !ok {
		return ErrNotAllowed
	}
	return nil
}

// Issue returns a signed token for an allowed username.
func (s *Service) Issue(username string) (string, error) {
	if err := s.Authorize(username); err != nil {
		return "", err
	}
	return s.issuer.IssueToken(username)
}

// Redeem verifies tokenStr and reports whether it carries the marker.
func (s *Service) Redeem(tokenStr string) (bool, error) {
	claims, err := s.issuer.VerifyToken(tokenStr)
	if err != nil {
		return false, err
	}
	return claims.SecretToken == s.marker, nil
}

// EncodedMarker is the marker in standard base64.
func (s *Service) EncodedMarker() string {
	return base64.StdEncoding.EncodeToString([]byte(s.marker))
}
