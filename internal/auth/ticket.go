package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"Bendung/internal/calc/dropcheck"
)

var ErrInvalidTicket = errors.New("invalid or expired ticket")

// DesignClaims carries the input of a completed drop check.
type DesignClaims struct {
	Input dropcheck.Input `json:"input"`
	jwt.RegisteredClaims
}

// Tickets issues and verifies HMAC-signed design tickets. A ticket lets a
// later request regenerate exactly the design the server computed.
type Tickets struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTickets(key []byte, ttl time.Duration) *Tickets {
	return &Tickets{key: key, ttl: ttl, now: time.Now}
}

func (t *Tickets) Issue(in dropcheck.Input) (string, error) {
	now := t.now()
	claims := DesignClaims{
		Input: in,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "dropcheck",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Parse verifies a ticket and returns its input and ticket ID.
func (t *Tickets) Parse(ticket string) (dropcheck.Input, string, error) {
	var claims DesignClaims
	token, err := jwt.ParseWithClaims(ticket, &claims, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return dropcheck.Input{}, "", ErrInvalidTicket
	}
	return claims.Input, claims.ID, nil
}
