package render

import (
	"strings"

	"github.com/fatih/color"
)

// Color styles shared by the renderers
var (
	labelStyle   = color.New(color.Faint)
	nameStyle    = color.New(color.FgWhite, color.Bold)
	addressStyle = color.New(color.FgWhite)
	versionStyle = color.New(color.FgCyan)
	pathStyle    = color.New(color.FgBlue)
	okStyle      = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow)
	errStyle     = color.New(color.FgRed)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	msg := message
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return errStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return okStyle.Sprintf("✅ %s", message)
}

// styled applies c only when color output is enabled
func styled(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// shortHash abbreviates a 0x-prefixed hex string for table cells
func shortHash(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:8] + "…" + s[len(s)-4:]
}
