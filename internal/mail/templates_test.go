package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationMessage(t *testing.T) {
	msg, err := VerificationMessage(
		"Stackwiser", "jane@example.com", "Jane", "Doe",
		"http://localhost:3000/api/v1/user", "abc123")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, "verification", msg.Kind)
	assert.Contains(t, msg.HTML, "Hi Jane Doe")
	assert.Contains(t, msg.HTML, "http://localhost:3000/api/v1/user/verify-email/abc123")
	assert.Contains(t, msg.HTML, "The Stackwiser Team")
}

func TestConfirmationMessage(t *testing.T) {
	msg, err := ConfirmationMessage("Stackwiser", "jane@example.com", "Jane")
	require.NoError(t, err)

	assert.Equal(t, "confirmation", msg.Kind)
	assert.Contains(t, msg.HTML, "jane@example.com")
	assert.Contains(t, msg.HTML, "Your account has been verified")
}

func TestResetMessage(t *testing.T) {
	msg, err := ResetMessage(
		"Stackwiser", "jane@example.com", "Jane",
		"http://localhost:3000/api/v1/user", "ff00aa")
	require.NoError(t, err)

	assert.Equal(t, "reset", msg.Kind)
	assert.Contains(t, msg.HTML, "Your password reset token is ff00aa")
	assert.Contains(t, msg.HTML, "http://localhost:3000/api/v1/user/resetpassword/ff00aa")
}

func TestTemplatesEscapeUserInput(t *testing.T) {
	msg, err := ConfirmationMessage("Stackwiser", "jane@example.com", `<script>alert(1)</script>`)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
}
