package style

import (
	"fmt"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/pterm/pterm"
)

// FormatError renders an error with the error prefix and, for coded
// errors, the code
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s %s %s",
			pterm.Error.Prefix.Text,
			ErrorStyle.Render(string(code)),
			err.Error())
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, ErrorStyle.Render(err.Error()))
}

// FormatSuccess renders a success line
func FormatSuccess(msg string) string {
	return fmt.Sprintf("%s %s", SuccessStyle.Render("✓"), msg)
}

// FormatWarning renders a warning line
func FormatWarning(msg string) string {
	return fmt.Sprintf("%s %s", WarningStyle.Render("!"), msg)
}
