// Package detector picks how reports are styled for the current terminal.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode represents how reports are rendered.
type OutputMode int

const (
	// ModeAuto leaves the choice to environment detection.
	ModeAuto OutputMode = iota
	// ModePretty renders colors and icons.
	ModePretty
	// ModePlain renders without escape sequences.
	ModePlain
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModePlain when stdout is not a terminal or a CI
// environment is detected, and ModePretty otherwise.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	ci = strings.ToLower(strings.TrimSpace(ci))
	if !isTTY || ci == "true" || ci == "1" {
		return ModePlain
	}
	return ModePretty
}

// ResolveMode applies the user's --output-mode flag over the detected mode.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch strings.ToLower(flag) {
	case "pretty", "color":
		return ModePretty
	case "plain", "ci":
		return ModePlain
	default:
		return detected
	}
}
