package exam

import (
	"fmt"
	"strings"
)

const (
	// BaseURL is the AoPS wiki page root.
	BaseURL = "https://artofproblemsolving.com/wiki/index.php"

	// MinYear is the first year any registered test ran.
	MinYear = 1950
)

// Type represents one competition series and the years it was offered.
type Type struct {
	Code        string
	Description string
	StartYear   int
	EndYear     int // 0 means still running
}

// types lists every known test series. Order here is display order.
var types = []Type{
	{Code: "AJHSME", Description: "American Junior High School Mathematics Examination", StartYear: 1985, EndYear: 1998},
	{Code: "AHSME", Description: "American High School Mathematics Examination", StartYear: 1950, EndYear: 1998},
	{Code: "8", Description: "AMC 8", StartYear: 1999},
	{Code: "10A", Description: "AMC 10A", StartYear: 2002},
	{Code: "10B", Description: "AMC 10B", StartYear: 2002},
	{Code: "10", Description: "AMC 10", StartYear: 2000, EndYear: 2001}, // legacy, pre A/B split
	{Code: "12A", Description: "AMC 12A", StartYear: 2002},
	{Code: "12B", Description: "AMC 12B", StartYear: 2002},
	{Code: "12", Description: "AMC 12", StartYear: 2000, EndYear: 2001}, // legacy, pre A/B split
	{Code: "AIME", Description: "American Invitational Mathematics Examination", StartYear: 1983, EndYear: 1999},
	{Code: "AIME_I", Description: "American Invitational Mathematics Examination I", StartYear: 2000},
	{Code: "AIME_II", Description: "American Invitational Mathematics Examination II", StartYear: 2000},
}

// All returns every registered test type in display order.
func All() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Lookup finds a test type by code, case-insensitively.
func Lookup(code string) (Type, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, t := range types {
		if t.Code == code {
			return t, true
		}
	}
	return Type{}, false
}

// AvailableFor returns the test types offered in the given year, in display order.
func AvailableFor(year int) []Type {
	available := make([]Type, 0, len(types))
	for _, t := range types {
		if t.AvailableIn(year) {
			available = append(available, t)
		}
	}
	return available
}

// AvailableIn reports whether this test type was offered in the given year.
func (t Type) AvailableIn(year int) bool {
	if year < t.StartYear {
		return false
	}
	return t.EndYear == 0 || year <= t.EndYear
}

// named reports whether the series uses its bare name in page titles.
// Everything else is an AMC variant and gets an "AMC_" prefix.
func (t Type) named() bool {
	switch t.Code {
	case "AIME", "AIME_I", "AIME_II", "AJHSME", "AHSME":
		return true
	}
	return false
}

// AnswerKeyURL builds the wiki answer-key page URL for this test in the given year.
func (t Type) AnswerKeyURL(year int) string {
	if t.named() {
		return fmt.Sprintf("%s/%d_%s_Answer_Key", BaseURL, year, t.Code)
	}
	return fmt.Sprintf("%s/%d_AMC_%s_Answer_Key", BaseURL, year, t.Code)
}

// ProblemURL derives the per-question problem page URL from an answer-key URL.
// The wiki keeps problems on a sibling path: "_Answer_Key" becomes "_Problems",
// with one subpage per question.
func ProblemURL(answerKeyURL string, question int) string {
	base := strings.Replace(answerKeyURL, "_Answer_Key", "_Problems", 1)
	return fmt.Sprintf("%s/Problem_%d", base, question)
}
