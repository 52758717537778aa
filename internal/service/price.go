package service

import (
	"regexp"
	"strconv"
	"strings"

	"cartsense/internal/model"
)

// Deterministic price-constraint extraction. This runs on every command,
// independently of the LLM, and its result overrides whatever price bounds
// the extractor produced. Three pattern families are tried in a fixed
// priority order; the first family that matches wins and at most one
// constraint is ever returned.
//
// Numeric grammar shared by all three: optional currency symbol, a decimal
// number with up to two decimal places, optional unit word.
const priceNumber = `[$€£]?\s*(\d+(?:\.\d{1,2})?)(?:\s*(?:dollars|bucks))?`

var (
	lessThanPattern = regexp.MustCompile(`(?:under|below|less than|max(?:imum)?)\s*` + priceNumber)
	moreThanPattern = regexp.MustCompile(`(?:above|over|more than|min(?:imum)?|greater than)\s*` + priceNumber)
	// "for" doubles as an unrelated preposition ("search for apples"); the
	// required trailing number keeps most of those out, but "apples for 5"
	// still matches. Known ambiguity, kept as-is.
	equalPattern = regexp.MustCompile(`(?:exactly|for)\s*` + priceNumber)
)

// ExtractPriceConstraint scans text for a numeric price cue and returns the
// matching constraint, or nil when no pattern family matches.
func ExtractPriceConstraint(text string) *model.PriceConstraint {
	text = strings.ToLower(text)

	families := []struct {
		re *regexp.Regexp
		op model.PriceOp
	}{
		{lessThanPattern, model.PriceLessThan},
		{moreThanPattern, model.PriceGreaterThan},
		{equalPattern, model.PriceEqual},
	}

	for _, f := range families {
		m := f.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return &model.PriceConstraint{Op: f.op, Value: value}
	}
	return nil
}
