package uatable

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

// Case is a single agent/expectation pair expanded from a Row.
type Case struct {
	Name     string
	Agent    string
	Expected categorizr.Category
}

// Cases expands the table into test cases. Rows in ModeInsensitive produce
// three cases: as given, lower-cased and upper-cased.
func (t Table) Cases() []Case {
	// Full Unicode case mapping, so "ß" upper-cases to "SS".
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	out := make([]Case, 0, len(t))
	for i, row := range t {
		out = append(out, Case{
			Name:     fmt.Sprintf("row_%d", i),
			Agent:    row.Agent,
			Expected: row.Expected,
		})
		if row.Mode != ModeInsensitive {
			continue
		}
		out = append(out,
			Case{
				Name:     fmt.Sprintf("row_%d_lower", i),
				Agent:    lower.String(row.Agent),
				Expected: row.Expected,
			},
			Case{
				Name:     fmt.Sprintf("row_%d_upper", i),
				Agent:    upper.String(row.Agent),
				Expected: row.Expected,
			},
		)
	}
	return out
}

// Detector classifies a user agent.
type Detector interface {
	Detect(userAgent string) categorizr.Device
}

// Mismatch is a case whose detected category differs from the expectation.
type Mismatch struct {
	Case
	Got categorizr.Category
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %s, got %s for %q", m.Name, m.Expected, m.Got, m.Agent)
}

// Check runs every case of the table through d and returns the mismatches.
func Check(d Detector, t Table) []Mismatch {
	var mismatches []Mismatch
	for _, c := range t.Cases() {
		if got := d.Detect(c.Agent).Category(); got != c.Expected {
			mismatches = append(mismatches, Mismatch{Case: c, Got: got})
		}
	}
	return mismatches
}
