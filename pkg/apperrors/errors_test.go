package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelClassification(t *testing.T) {
	assert.ErrorIs(t, Validation("bad input"), ErrValidation)
	assert.ErrorIs(t, Conflict("busy"), ErrConflict)
	assert.ErrorIs(t, NotFound("gone"), ErrNotFound)
	assert.ErrorIs(t, Forbidden("nope"), ErrForbidden)
	assert.ErrorIs(t, External("down", errors.New("refused")), ErrExternal)
}

func TestMessageStripsSentinel(t *testing.T) {
	assert.Equal(t, "Room not found", Message(NotFound("Room not found")))
	assert.Equal(t, "Number id busy on the specified dates", Message(Conflict("Number id busy on the specified dates")))
	assert.Equal(t, "", Message(nil))
}

func TestMessageKeepsForeignErrors(t *testing.T) {
	err := errors.New("something else")
	assert.Equal(t, "something else", Message(err))
}

func TestMessageSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create booking: %w", Conflict("busy"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "create booking: busy", Message(err))
}

func TestExternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := External("management unreachable", cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, Message(err), "management unreachable")
}
