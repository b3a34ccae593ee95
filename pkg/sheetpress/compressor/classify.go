// Package compressor implements the three compression stages: structural
// anchor pruning, inverted-index translation and data-format aggregation.
package compressor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

var (
	emailPat = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	datePats = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`),
		regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{4}$`),
		regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2}$`),
	}
	timePat       = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?(\s*[AaPp][Mm])?$`)
	currencyPat   = regexp.MustCompile(`^[$£€¥₹]\s*-?\d{1,3}(,\d{3})*(\.\d+)?$`)
	percentPat    = regexp.MustCompile(`^-?\d+\.?\d*%$`)
	scientificPat = regexp.MustCompile(`^-?\d+\.?\d*[eE][+-]?\d+$`)
	yearPat       = regexp.MustCompile(`^[1-9]\d{3}$`)
	integerPat    = regexp.MustCompile(`^-?\d+$`)
	floatPat      = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// rule pairs a data type with its recognition predicate. The format argument
// is the lowercased number format string of the cell.
type rule struct {
	dataType models.DataType
	match    func(value, format string) bool
}

// rules is the fixed-precedence classification table; the first match wins.
// Order: Email, Date, Time, Currency, Percentage, Scientific, Year, Integer,
// Float. Anything unmatched is Other.
var rules = []rule{
	{models.TypeEmail, func(v, _ string) bool { return emailPat.MatchString(v) }},
	{models.TypeDate, func(v, f string) bool { return matchAny(datePats, v) || dateFormat(f) }},
	{models.TypeTime, func(v, f string) bool { return timePat.MatchString(v) || timeFormat(f) }},
	{models.TypeCurrency, func(v, f string) bool { return currencyPat.MatchString(v) || strings.ContainsAny(f, "$£€¥₹") }},
	{models.TypePercentage, func(v, f string) bool { return percentPat.MatchString(v) || strings.Contains(f, "%") }},
	{models.TypeScientific, func(v, f string) bool { return scientificPat.MatchString(v) || scientificFormat(f) }},
	{models.TypeYear, func(v, _ string) bool { return yearPat.MatchString(v) && plausibleYear(v) }},
	{models.TypeInteger, func(v, _ string) bool { return integerPat.MatchString(v) }},
	{models.TypeFloat, func(v, _ string) bool { return floatPat.MatchString(v) }},
}

// Classify maps a cell to its semantic data type. Classification is a pure
// function of the raw value and format string; empty cells classify as Other.
func Classify(c models.Cell) models.DataType {
	v := strings.TrimSpace(c.Value)
	if v == "" {
		return models.TypeOther
	}
	f := strings.ToLower(c.Format)
	for _, r := range rules {
		if r.match(v, f) {
			return r.dataType
		}
	}
	return models.TypeOther
}

func matchAny(pats []*regexp.Regexp, v string) bool {
	for _, p := range pats {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

// dateFormat reports whether a number format renders dates. Month codes alone
// are ambiguous with minutes, so only year, day and month-name codes count.
func dateFormat(f string) bool {
	return strings.Contains(f, "yy") || strings.Contains(f, "dd") || strings.Contains(f, "mmm")
}

func timeFormat(f string) bool {
	return strings.Contains(f, "hh") || strings.Contains(f, "h:") ||
		strings.Contains(f, ":mm") || strings.Contains(f, "ss") ||
		strings.Contains(f, "am/pm")
}

func scientificFormat(f string) bool {
	return strings.Contains(f, "e+") || strings.Contains(f, "e-")
}

func plausibleYear(v string) bool {
	n, err := strconv.Atoi(v)
	return err == nil && n >= 1000 && n <= 9999
}
