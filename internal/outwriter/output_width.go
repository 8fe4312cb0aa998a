package outwriter

import (
	"os"

	"github.com/edustats/gradeboard/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for student and subject
// names in table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (rank, numbers, status) with
	// borders and padding.
	available := termWidth - 45
	if available < 10 {
		return 10
	}
	if available > 40 {
		return 40
	}
	return available
}
