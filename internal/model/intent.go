package model

// IntentKind enumerates the actions the extractor can recognise.
type IntentKind string

const (
	IntentAdd     IntentKind = "add"
	IntentRemove  IntentKind = "remove"
	IntentSearch  IntentKind = "search"
	IntentUnknown IntentKind = "unknown"
)

// ValidIntentKind reports whether k is one of the four recognised kinds.
func ValidIntentKind(k IntentKind) bool {
	switch k {
	case IntentAdd, IntentRemove, IntentSearch, IntentUnknown:
		return true
	}
	return false
}

// Intent is the structured result of extracting a shopping command.
// For add/remove/search the Item is non-empty; for unknown it is empty.
type Intent struct {
	Kind     IntentKind `json:"intent"`
	Item     string     `json:"item,omitempty"`
	Quantity int        `json:"quantity,omitempty"`
	Language string     `json:"language,omitempty"` // ISO 639-1, informational only
	Source   string     `json:"source,omitempty"`   // provenance: "llm" today
	Filters  *Filters   `json:"filters,omitempty"`  // search constraints, if any
}

// Filters is the constraint set applied to a catalog search.
// Absent fields mean "no restriction". If MinPrice > MaxPrice the result
// set is empty by construction; no special-casing anywhere.
type Filters struct {
	Brand     *string  `json:"brand,omitempty"`
	MinPrice  *float64 `json:"min_price,omitempty"`
	MaxPrice  *float64 `json:"max_price,omitempty"`
	Size      *string  `json:"size,omitempty"`
	Qualifier *string  `json:"qualifier,omitempty"`
}

// PriceOp is the comparison carried by a deterministic price constraint.
type PriceOp string

const (
	PriceLessThan    PriceOp = "less_than"
	PriceGreaterThan PriceOp = "greater_than"
	PriceEqual       PriceOp = "equal"
)

// PriceConstraint is produced by the deterministic parser, independently of
// the extractor. When present it replaces the corresponding bound(s) in the
// filter set; it never merges with extractor-provided values.
type PriceConstraint struct {
	Op    PriceOp `json:"op"`
	Value float64 `json:"value"`
}

// AdviceType enumerates the suggestion categories the classifier can return.
type AdviceType string

const (
	AdviceSubstitute AdviceType = "substitute"
	AdviceHistory    AdviceType = "history"
	AdviceSeasonal   AdviceType = "seasonal"
	AdviceHealthy    AdviceType = "healthy"
	AdviceGeneric    AdviceType = "generic"
)

// Advice is a per-request suggestion result. It is never persisted.
type Advice struct {
	Type        AdviceType `json:"type"`
	Message     string     `json:"message"`
	Suggestions []string   `json:"suggestions"`
}
