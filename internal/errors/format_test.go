package errors

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrorPlain(t *testing.T) {
	tests := map[string]struct {
		err      *CLIError
		contains []string
	}{
		"message with category": {
			err: NewAuthenticationError("token was rejected"),
			contains: []string{
				"Error [Authentication Error]: token was rejected",
			},
		},
		"remediation steps become bullets": {
			err: NewConfigError("no token configured",
				"Set CHANGELOGUP_TOKEN",
				"Or pass --token",
			),
			contains: []string{
				"To fix this:",
				"  • Set CHANGELOGUP_TOKEN",
				"  • Or pass --token",
			},
		},
		"usage line included when set": {
			err: NewArgumentErrorWithUsage(
				"unexpected argument",
				"changelogup generate [flags]",
			),
			contains: []string{
				"Usage: changelogup generate [flags]",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := FormatErrorPlain(tc.err)
			for _, want := range tc.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestFormatErrorPlain_NilError(t *testing.T) {
	assert.Equal(t, "", FormatErrorPlain(nil))
	assert.Equal(t, "", FormatError(nil))
}

func TestFprintError(t *testing.T) {
	var buf bytes.Buffer
	FprintError(&buf, NewNotFoundError("repository acme/widgets not found"))
	assert.Contains(t, buf.String(), "acme/widgets")

	buf.Reset()
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestFormatSimpleError(t *testing.T) {
	got := FormatSimpleError(errors.New("connection reset"), Network)
	assert.Contains(t, got, "connection reset")
	assert.True(t, strings.Contains(got, Network.String()))

	assert.Equal(t, "", FormatSimpleError(nil, Runtime))
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		want     string
	}{
		{Argument, "Argument Error"},
		{Configuration, "Configuration Error"},
		{Authentication, "Authentication Error"},
		{NotFound, "Not Found"},
		{RateLimit, "Rate Limit Error"},
		{Network, "Network Error"},
		{IO, "I/O Error"},
		{Runtime, "Runtime Error"},
		{ErrorCategory(99), "Error"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.category.String())
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(errors.New("dial tcp: timeout"), Network, "Check connectivity")
	require.NotNil(t, wrapped)
	assert.Equal(t, Network, wrapped.Category)
	assert.Equal(t, "dial tcp: timeout", wrapped.Message)
	assert.Equal(t, []string{"Check connectivity"}, wrapped.Remediation)

	assert.Nil(t, Wrap(nil, Network))
}

func TestWrapWithMessage(t *testing.T) {
	wrapped := WrapWithMessage(errors.New("permission denied"), IO, "writing changelog")
	require.NotNil(t, wrapped)
	assert.Equal(t, "writing changelog: permission denied", wrapped.Message)

	assert.Nil(t, WrapWithMessage(nil, IO, "writing changelog"))
}

func TestIsCLIError(t *testing.T) {
	assert.True(t, IsCLIError(NewRuntimeError("boom")))
	assert.False(t, IsCLIError(errors.New("boom")))
	assert.False(t, IsCLIError(nil))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, RateLimit, CategoryOf(NewRateLimitError("slow down")))
	assert.Equal(t, Runtime, CategoryOf(errors.New("plain")))
}
