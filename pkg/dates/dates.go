// Package dates provides the date conventions shared by the ULS extracts:
// the fixed-width MM/DD/YYYY layout of the source files and the YYYY-MM-DD
// layout of the merged output.
package dates

import (
	"github.com/agentstation/utc"

	"github.com/N7DR/fcc-db/pkg/errors"
)

// ISO is the layout of dates in the merged output. Values in this layout
// compare correctly as plain strings.
const ISO = "2006-01-02"

// usLength is the fixed width of an MM/DD/YYYY value.
const usLength = 10

// Transform rewrites a fixed 10-character MM/DD/YYYY value as YYYY-MM-DD.
// The components are reordered, not parsed; only the length is validated.
func Transform(us string) (string, error) {
	if len(us) != usLength {
		return "", errors.NewDateError(us)
	}

	return us[6:10] + "-" + us[0:2] + "-" + us[3:5], nil
}

// Today returns the current UTC calendar date in ISO form, so a run started
// near midnight does not depend on the host timezone.
func Today() string {
	return utc.Now().Format(ISO)
}

// ValidISO reports whether s looks like a YYYY-MM-DD value. Used to check
// an explicitly supplied current date before it reaches the temporal filter.
func ValidISO(s string) bool {
	if len(s) != usLength {
		return false
	}

	for i := 0; i < usLength; i++ {
		if i == 4 || i == 7 {
			if s[i] != '-' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
