package domain

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

const (
	UserActivationScope = "user_activation"

	tokenLength = 32
)

// Token is a single-use credential. Only the SHA-256 hash is stored; the
// plaintext exists just long enough to be mailed to the user.
type Token struct {
	Plaintext string
	Hash      []byte
	UserID    int
	Expiry    time.Time
	Scope     string
}

func NewToken(userID int, ttl time.Duration, scope string) (*Token, error) {
	randomBytes := make([]byte, tokenLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, err
	}

	plaintext := base64.RawURLEncoding.EncodeToString(randomBytes)
	hash := sha256.Sum256([]byte(plaintext))

	return &Token{
		Plaintext: plaintext,
		Hash:      hash[:],
		UserID:    userID,
		Expiry:    time.Now().Add(ttl),
		Scope:     scope,
	}, nil
}

type TokenRepository interface {
	Create(ctx context.Context, token *Token) error
	DeleteAllForUser(ctx context.Context, tokenScope string, userID int) error
}
