package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanError(t *testing.T) {
	err := NewScanError("/drafts", fs.ErrNotExist)

	assert.Equal(t, "cannot read drafts at /drafts: file does not exist", err.Error())
	assert.ErrorIs(t, err, ErrInputUnreadable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, IsFatal(err))
}

func TestWriteError(t *testing.T) {
	err := NewWriteError("/out/a.html", fs.ErrPermission)

	assert.Contains(t, err.Error(), "/out/a.html")
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.ErrorIs(t, err, fs.ErrPermission)

	var writeErr *WriteError
	assert.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "/out/a.html", writeErr.Path)
}

func TestMarkerError(t *testing.T) {
	tests := []struct {
		name     string
		err      *MarkerError
		path     string
		sentinel error
		contains string
	}{
		{
			name:     "missing marker without path",
			err:      NewMarkerError("<!-- END -->", ErrMarkerMissing),
			sentinel: ErrMarkerMissing,
			contains: "index document: marker not found",
		},
		{
			name:     "order error with path",
			err:      NewMarkerError("<!-- END -->", ErrMarkerOrder),
			path:     "index.html",
			sentinel: ErrMarkerOrder,
			contains: "index.html: end marker precedes start marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.err.Path = tt.path
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Contains(t, tt.err.Error(), tt.contains)
			assert.True(t, IsFatal(tt.err))
		})
	}
}

func TestIsFatal_Unrelated(t *testing.T) {
	assert.False(t, IsFatal(errors.New("something else")))
	assert.False(t, IsFatal(nil))
}
