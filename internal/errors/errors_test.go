package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := UnsupportedInput("unsupported file type \".odt\"", nil)
	assert.Equal(t, "unsupported file type \".odt\"", err.Error())

	err = IOFailure("writing index", os.ErrPermission)
	assert.Equal(t, "writing index: permission denied", err.Error())
}

func TestErrorUnwrap(t *testing.T) {
	err := IOFailure("writing index", os.ErrPermission)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestIsKind(t *testing.T) {
	base := MissingCapability("pdftotext not found", nil)
	wrapped := fmt.Errorf("opening source: %w", base)

	assert.True(t, IsKind(wrapped, KindMissingCapability))
	assert.False(t, IsKind(wrapped, KindIOFailure))
	assert.False(t, IsKind(errors.New("plain"), KindMissingCapability))
	assert.False(t, IsKind(nil, KindMissingCapability))
	assert.Equal(t, KindMissingCapability, GetKind(wrapped))
	assert.Equal(t, Kind(""), GetKind(errors.New("plain")))
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("run: %w", UnsupportedInput("cannot open", nil))
	assert.True(t, errors.Is(err, UnsupportedInput("", nil)))
	assert.False(t, errors.Is(err, IOFailure("", nil)))
}

func TestSuggestion(t *testing.T) {
	err := MissingCapability("soffice not found", nil).WithSuggestion("install LibreOffice")
	assert.Equal(t, "install LibreOffice", GetSuggestion(fmt.Errorf("x: %w", err)))
	assert.Equal(t, "", GetSuggestion(errors.New("plain")))
}
