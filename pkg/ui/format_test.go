// pkg/ui/format_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test output format parsing and resolution

package ui_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
	}{
		{"auto", ui.FormatAuto},
		{"", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"TERMINAL", ui.FormatTerminal},
		{"text", ui.FormatText},
		{"plain", ui.FormatText},
		{" Json ", ui.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ui.ParseFormat("xml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Equal(t, "xml", errors.GetErrorDetails(err)["format"])
	})
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("regular file is text", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}

func TestResolve(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, f, true))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatTerminal, f, true))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, f, false))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, f, false))
}
