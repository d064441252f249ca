// pkg/style/style_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test themes and message formatting

package style

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	coded := FormatError(errors.New(errors.ErrNotFound, "alias 'x' not found"))
	assert.Contains(t, coded, "NOT_FOUND")
	assert.Contains(t, coded, "alias 'x' not found")

	plain := FormatError(fmt.Errorf("boom"))
	assert.Contains(t, plain, "boom")
	assert.NotContains(t, plain, "UNKNOWN")

	assert.Empty(t, FormatError(nil))
}

func TestFormatSuccessAndWarning(t *testing.T) {
	assert.Contains(t, FormatSuccess("added gs"), "added gs")
	assert.Contains(t, FormatWarning("careful"), "careful")
}

func TestApply(t *testing.T) {
	defer Apply(DefaultTheme)

	custom := DefaultTheme
	custom.Name = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	Apply(custom)

	assert.Equal(t, lipgloss.TerminalColor(custom.Name), NameStyle.GetForeground())
	assert.True(t, DisabledStyle.GetStrikethrough())
}
