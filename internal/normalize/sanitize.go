// Package normalize merges per-category extraction results into one
// ResumeRecord and cleans placeholder values, dates, phones and e-mails.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
)

// JunkTokens are placeholder values models emit for missing data.
// Matching is case-insensitive after trimming.
var JunkTokens = []string{
	"NONE", "NULL", "NAN", "UNKNOWN", "<UNKNOWN>", "N/A", "NA", "N.A", "NONE.",
	"UNDEFINED", "?", "--", "NOT PROVIDED", "NOT SPECIFIED", "NOT AVAILABLE",
	"NOT MENTIONED", "NOT APPLICABLE", "NOT GIVEN", "NO DATA", "NO INFORMATION",
	"NO DETAILS", "NO ANSWER",
}

var junkSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(JunkTokens))
	for _, tok := range JunkTokens {
		set[tok] = struct{}{}
	}
	return set
}()

// IsJunk reports whether s is a placeholder token
func IsJunk(s string) bool {
	_, ok := junkSet[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// Sanitize returns "" for placeholder tokens and the trimmed value otherwise.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if IsJunk(s) {
		return ""
	}
	return s
}

// Month-precision layouts tried before the general-purpose parser, which
// does not accept them reliably.
var monthLayouts = []string{
	"Jan 2006", "January 2006", "Jan-2006", "January-2006", "Jan, 2006", "January, 2006",
	"Jan. 2006", "Jan'06", "01/2006", "1/2006", "01-2006", "01.2006", "2006/01",
}

// Day-first layouts; dashed and dotted numeric dates are read as DD-MM-YYYY.
var dayFirstLayouts = []string{
	"02-01-2006", "2-1-2006", "02.01.2006", "2.1.2006",
	"2 January 2006", "2 Jan 2006", "2 Jan. 2006", "2-Jan-2006",
}

var (
	ordinalSuffix = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)
	septAbbrev    = regexp.MustCompile(`(?i)\bsept\b`)
)

// NormalizeDate parses s leniently and returns it as YYYY-MM-DD, or "" when
// it cannot be parsed. Dates with only a month or year resolve to the first day.
func NormalizeDate(s string) string {
	s = Sanitize(s)
	if s == "" {
		return ""
	}

	s = ordinalSuffix.ReplaceAllString(s, "$1")
	s = septAbbrev.ReplaceAllString(s, "Sep")

	for _, layouts := range [][]string{monthLayouts, dayFirstLayouts} {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return formatDate(t)
			}
		}
	}

	t, err := dateparse.ParseAny(s, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return ""
	}
	return formatDate(t)
}

// formatDate rejects years the parser filled in from nothing, such as "Mar 19"
func formatDate(t time.Time) string {
	if t.Year() < 1000 {
		return ""
	}
	return t.Format(time.DateOnly)
}

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhone strips every non-digit character
func NormalizePhone(s string) string {
	return nonDigit.ReplaceAllString(Sanitize(s), "")
}

var emailValidator = validator.New()

// NormalizeEmail returns the trimmed address if it is well formed and "" otherwise
func NormalizeEmail(s string) string {
	s = Sanitize(s)
	if s == "" {
		return ""
	}
	if err := emailValidator.Var(s, "email"); err != nil {
		return ""
	}
	return s
}
