package model

// CommandRequest is a natural-language shopping command submission.
// Language is a BCP 47 tag reported by the client ("hi-IN", "es", ...);
// empty means the pivot language (English).
type CommandRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language,omitempty"`
}

// ResultKind tags the shape of a command response.
type ResultKind string

const (
	ResultAction  ResultKind = "action"
	ResultSearch  ResultKind = "search"
	ResultAdvice  ResultKind = "advice"
	ResultUnknown ResultKind = "unknown"
)

// CommandResponse is the single envelope returned for every command.
// Exactly one of Action, Search, Advice is set, matching Kind.
type CommandResponse struct {
	Kind       ResultKind    `json:"kind"`
	Action     *ActionResult `json:"action,omitempty"`
	Search     *SearchResult `json:"search,omitempty"`
	Advice     *Advice       `json:"advice,omitempty"`
	Message    string        `json:"message"`
	Translated bool          `json:"translated"`
	TookMs     int64         `json:"took_ms"`
}

// ActionResult describes a completed (or attempted) list mutation.
// AffectedItem is nil when a remove targeted an absent item; that is a
// normal outcome, not an error.
type ActionResult struct {
	Intent       IntentKind `json:"intent"`
	Item         string     `json:"item"`
	Quantity     int        `json:"quantity,omitempty"`
	Category     string     `json:"category,omitempty"`
	AffectedItem *ListItem  `json:"affected_item,omitempty"`
}

// SearchResult carries catalog matches plus any matching entries already on
// the shopping list. Filters echoes the fully resolved constraint set so the
// client can show which restrictions were applied.
type SearchResult struct {
	Intent      IntentKind `json:"intent"`
	Item        string     `json:"item"`
	Results     []Product  `json:"results"`
	Filters     *Filters   `json:"filters,omitempty"`
	ListMatches []ListItem `json:"list_matches,omitempty"`
}

// ListAddRequest is a direct (non-NL) add to the shopping list.
type ListAddRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity,omitempty"`
	Category string `json:"category,omitempty"`
}
