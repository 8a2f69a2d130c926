package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenExpired(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := Token{Expires: issued.Add(TokenTTL)}

	assert.False(t, token.Expired(issued))
	// The boundary instant itself is still valid.
	assert.False(t, token.Expired(issued.Add(TokenTTL)))
	assert.True(t, token.Expired(issued.Add(TokenTTL+time.Second)))
}
