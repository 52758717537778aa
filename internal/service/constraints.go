package service

import "cartsense/internal/model"

// ResolveFilters merges the extractor-provided constraint set with the
// deterministic price constraint. The deterministic side has unconditional
// authority over the bound(s) it names: less-than replaces MaxPrice,
// greater-than replaces MinPrice, equal replaces both. Non-price fields
// always come from the extractor. Values are never merged or averaged.
func ResolveFilters(extracted *model.Filters, det *model.PriceConstraint) *model.Filters {
	merged := &model.Filters{}
	if extracted != nil {
		*merged = *extracted
	}
	if det == nil {
		return merged
	}

	v := det.Value
	switch det.Op {
	case model.PriceLessThan:
		merged.MaxPrice = &v
	case model.PriceGreaterThan:
		merged.MinPrice = &v
	case model.PriceEqual:
		lo, hi := v, v
		merged.MinPrice = &lo
		merged.MaxPrice = &hi
	}
	return merged
}
