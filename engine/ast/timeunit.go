package ast

import "strings"

// unabbreviatedTimeUnit maps a TimeUnit abbreviation to its full name, taken
// verbatim from sqlglot's UNABBREVIATED_UNIT_NAME.
var unabbreviatedTimeUnit = map[string]string{
	"D":  "DAY",
	"H":  "HOUR",
	"M":  "MINUTE",
	"MS": "MILLISECOND",
	"NS": "NANOSECOND",
	"Q":  "QUARTER",
	"S":  "SECOND",
	"US": "MICROSECOND",
	"W":  "WEEK",
	"Y":  "YEAR",
}

// NormalizeTimeUnit expands a TimeUnit abbreviation (D, Q, H, M, MS, NS, S,
// US, W, Y) to its unabbreviated, upper-cased form, leaving any other unit
// name upper-cased but otherwise unchanged.
func NormalizeTimeUnit(unit string) string {
	upper := strings.ToUpper(unit)
	if full, ok := unabbreviatedTimeUnit[upper]; ok {
		return full
	}
	return upper
}
