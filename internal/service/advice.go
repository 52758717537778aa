package service

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"cartsense/internal/model"
	"cartsense/internal/repository"
)

// Advisor classifies meta-queries ("what should I buy?", "substitute for
// milk?") that the extractor could not resolve to a concrete intent. The
// cascade is an ordered list of (predicate, handler) pairs evaluated in
// priority order, halting at the first handler that produces a result.
type Advisor struct {
	history repository.HistoryStore
	now     func() time.Time
}

// NewAdvisor creates an advisor over the given history collaborator.
func NewAdvisor(history repository.HistoryStore) *Advisor {
	return &Advisor{history: history, now: time.Now}
}

var substitutePattern = regexp.MustCompile(`(?:substitute|alternative|instead)\s+(?:for|of)?\s*(.+)`)

var (
	adviceCues   = []string{"suggest", "recommend", "what should", "any ideas"}
	seasonalCues = []string{"season", "seasonal", "fruit", "in season"}
	healthCues   = []string{"healthy", "health", "nutritious", "diet"}
)

// Classify returns an advice result for the pivot text, or nil when the
// text is a true unknown. It runs only when the extractor returned unknown
// or an intent with no item.
//
// History-based and healthy suggestions are randomly ordered, so two calls
// with identical state can differ. Deliberate: variety is the point of a
// suggestion; do not make this reproducible.
func (a *Advisor) Classify(ctx context.Context, pivotText string) *model.Advice {
	text := strings.ToLower(strings.TrimSpace(pivotText))
	if text == "" {
		return nil
	}

	steps := []struct {
		match  func(string) bool
		handle func(context.Context, string) *model.Advice
	}{
		{a.isSubstituteRequest, a.substituteAdvice},
		{a.isHistoryRequest, a.historyAdvice},
		{a.isSeasonalRequest, a.seasonalAdvice},
		{a.isHealthRequest, a.healthAdvice},
		{a.isAdviceRequest, a.genericAdvice},
	}

	for _, step := range steps {
		if !step.match(text) {
			continue
		}
		if advice := step.handle(ctx, text); advice != nil {
			return advice
		}
		// handler produced nothing (e.g. unknown substitute), fall through
	}
	return nil
}

func (a *Advisor) isSubstituteRequest(text string) bool {
	return substitutePattern.MatchString(text)
}

func (a *Advisor) substituteAdvice(ctx context.Context, text string) *model.Advice {
	m := substitutePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	item := strings.Trim(strings.TrimSpace(m[1]), ".!?,;:")
	subs := repository.SubstitutesFor(item)
	if len(subs) == 0 {
		return nil
	}
	return &model.Advice{
		Type:        model.AdviceSubstitute,
		Message:     fmt.Sprintf("You could try these instead of %s:", item),
		Suggestions: subs,
	}
}

// isHistoryRequest gates on general advice cues, but defers to the seasonal
// and health handlers when their cues are also present.
func (a *Advisor) isHistoryRequest(text string) bool {
	return containsAny(text, adviceCues) &&
		!containsAny(text, seasonalCues) &&
		!containsAny(text, healthCues)
}

func (a *Advisor) historyAdvice(ctx context.Context, text string) *model.Advice {
	low, err := a.history.RunningLow(ctx)
	if err != nil || len(low) == 0 {
		return nil
	}
	rand.Shuffle(len(low), func(i, j int) { low[i], low[j] = low[j], low[i] })
	if len(low) > 3 {
		low = low[:3]
	}
	return &model.Advice{
		Type:        model.AdviceHistory,
		Message:     "You usually buy these and they're not on your list:",
		Suggestions: low,
	}
}

func (a *Advisor) isSeasonalRequest(text string) bool {
	return containsAny(text, seasonalCues)
}

func (a *Advisor) seasonalAdvice(ctx context.Context, text string) *model.Advice {
	monthIndex := int(a.now().Month()) - 1
	items := repository.SeasonalItems(monthIndex)
	if len(items) == 0 {
		return nil
	}
	return &model.Advice{
		Type:        model.AdviceSeasonal,
		Message:     fmt.Sprintf("In season this %s:", a.now().Month()),
		Suggestions: items,
	}
}

func (a *Advisor) isHealthRequest(text string) bool {
	return containsAny(text, healthCues)
}

func (a *Advisor) healthAdvice(ctx context.Context, text string) *model.Advice {
	pool := repository.HealthyOptions()
	picks := make([]string, len(pool))
	copy(picks, pool)
	rand.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
	if len(picks) > 3 {
		picks = picks[:3]
	}
	return &model.Advice{
		Type:        model.AdviceHealthy,
		Message:     "Some healthy options to consider:",
		Suggestions: picks,
	}
}

func (a *Advisor) isAdviceRequest(text string) bool {
	return containsAny(text, adviceCues)
}

func (a *Advisor) genericAdvice(ctx context.Context, text string) *model.Advice {
	return &model.Advice{
		Type:        model.AdviceGeneric,
		Message:     "Most households need these regularly:",
		Suggestions: repository.FrequentItems(),
	}
}

// genericCategoryCues maps cue fragments to a generic-category label.
// Checked in declaration order.
var genericCategoryCues = []struct {
	cues  []string
	label string
}{
	{[]string{"staple", "basic"}, "staples"},
	{[]string{"household", "cleaning"}, "household"},
	{[]string{"essential", "grocery", "groceries", "food", "daily need"}, "essentials"},
}

// GenericCategory detects a request for a class of items rather than a named
// product ("household staples"). It applies both to unknown intents and to
// search intents whose item itself matches a cue; in the latter case it
// takes priority over a specific catalog search.
func GenericCategory(text string) (string, []string, bool) {
	text = strings.ToLower(text)
	for _, entry := range genericCategoryCues {
		if containsAny(text, entry.cues) {
			return entry.label, repository.GenericCategoryItems(entry.label), true
		}
	}
	return "", nil, false
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
