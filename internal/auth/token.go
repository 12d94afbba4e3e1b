package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT plus its expiry. Tokens are
// short-lived; sessions simply re-login when one lapses, so there is no
// refresh-token machinery.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken signs a token for an employee. Claims carry the
// employee id (sub), display name and team so reservation handlers can
// act without a store lookup.
func NewAccessToken(secret string, employeeID uint64, fullName, team string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  employeeID,
		"name": fullName,
		"team": team,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
