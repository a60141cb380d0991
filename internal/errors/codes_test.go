package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(NotFound("gone")))
	assert.Equal(t, CodeAuth, CodeOf(Auth("nope")))
	assert.Equal(t, Code(""), CodeOf(pkgerrors.New("untagged")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	err := Transport(pkgerrors.New("connection refused"), "GET /notes failed")
	wrapped := pkgerrors.Wrap(err, "refresh")

	assert.True(t, Is(wrapped, CodeTransport))
	assert.False(t, Is(wrapped, CodeNotFound))
}

func TestErrorMessage(t *testing.T) {
	err := Parse(pkgerrors.New("unexpected token"), "slot %s is corrupt", "love-notes")
	assert.Contains(t, err.Error(), "PARSE")
	assert.Contains(t, err.Error(), "love-notes")
	assert.Contains(t, err.Error(), "unexpected token")
}
