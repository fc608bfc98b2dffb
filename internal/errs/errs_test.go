package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already decided")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("no such contribution"))
	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(err, KindConflict))
}

func TestUpstreamCarriesDiagnostics(t *testing.T) {
	err := Upstream(502, `{"error":"model crashed"}`, "recognizer rejected the request")

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 502, e.UpstreamStatus)
	assert.Contains(t, e.UpstreamBody, "model crashed")
}

func TestUnavailableUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable(cause, "recognizer unreachable")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUnavailable, KindOf(err))
}
