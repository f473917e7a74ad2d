// Package insights provides salary-market computations over the static
// per-category salary table. It is pure: nothing here touches storage.
package insights

import (
	"math"
	"regexp"
	"strconv"
)

var digitRuns = regexp.MustCompile(`\d+`)

// SalaryRange is a per-category market range in the catalog's currency.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Avg int `json:"avg"`
}

// salaryData is the market table per job category.
var salaryData = map[string]SalaryRange{
	"IT & Software":     {Min: 800, Max: 2600, Avg: 1500},
	"Design & Creative": {Min: 600, Max: 1700, Avg: 1100},
	"Marketing & Sales": {Min: 700, Max: 2000, Avg: 1100},
	"Finance":           {Min: 800, Max: 1800, Avg: 1200},
	"Education":         {Min: 800, Max: 1200, Avg: 950},
	"Engineering":       {Min: 1200, Max: 2100, Avg: 1600},
	"Healthcare":        {Min: 750, Max: 3000, Avg: 1200},
	"Customer Support":  {Min: 600, Max: 1600, Avg: 900},
	"Administration":    {Min: 700, Max: 1400, Avg: 950},
}

// SalaryInsights returns the market range for a category.
func SalaryInsights(category string) (SalaryRange, bool) {
	r, ok := salaryData[category]
	return r, ok
}

// AllSalaryInsights returns a copy of the whole market table.
func AllSalaryInsights() map[string]SalaryRange {
	out := make(map[string]SalaryRange, len(salaryData))
	for k, v := range salaryData {
		out[k] = v
	}
	return out
}

// OfferedSalary is the range parsed out of a free-text salary string.
type OfferedSalary struct {
	Min int     `json:"min"`
	Max int     `json:"max"`
	Avg float64 `json:"avg"`
}

// Comparison relates an offered salary to its category's market range.
// Verdict is "above" when the offered midpoint beats the market average by
// more than 10%, "below" when it trails by more than 10%, else "average".
type Comparison struct {
	Offered    OfferedSalary `json:"offered"`
	Market     SalaryRange   `json:"market"`
	Verdict    string        `json:"comparison"`
	Percentile int           `json:"percentile"`
}

// CompareSalary parses the first one or two numbers out of the salary text
// and compares their midpoint against the category's market range. It
// returns false when the category is unknown or the text has no numbers.
func CompareSalary(category, salary string) (*Comparison, bool) {
	market, ok := salaryData[category]
	if !ok || salary == "" {
		return nil, false
	}

	matches := digitRuns.FindAllString(salary, -1)
	if len(matches) == 0 {
		return nil, false
	}

	min, _ := strconv.Atoi(matches[0])
	max := min
	if len(matches) > 1 {
		max, _ = strconv.Atoi(matches[1])
	}
	avg := float64(min+max) / 2

	verdict := "average"
	switch {
	case avg > float64(market.Avg)*1.1:
		verdict = "above"
	case avg < float64(market.Avg)*0.9:
		verdict = "below"
	}

	percentile := int(math.Round((avg - float64(market.Min)) / float64(market.Max-market.Min) * 100))

	return &Comparison{
		Offered:    OfferedSalary{Min: min, Max: max, Avg: avg},
		Market:     market,
		Verdict:    verdict,
		Percentile: percentile,
	}, true
}
