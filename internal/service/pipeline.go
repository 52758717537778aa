package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cartsense/internal/model"
	"cartsense/internal/repository"
)

// ErrEmptyInput is returned for commands with no usable text.
var ErrEmptyInput = errors.New("empty command text")

// Pipeline wires the full command path: translation, deterministic price
// extraction, LLM intent extraction, then dispatch to the list store, the
// catalog, or the advisor.
type Pipeline struct {
	translator Translator
	extractor  Extractor
	store      repository.Store
	catalog    *repository.Catalog
	advisor    *Advisor
	timeout    time.Duration
}

// NewPipeline creates a new command pipeline. timeout bounds each external
// call (translation, extraction) individually.
func NewPipeline(translator Translator, extractor Extractor, store repository.Store, catalog *repository.Catalog, advisor *Advisor, timeout time.Duration) *Pipeline {
	return &Pipeline{
		translator: translator,
		extractor:  extractor,
		store:      store,
		catalog:    catalog,
		advisor:    advisor,
		timeout:    timeout,
	}
}

// Process runs one natural-language command end to end. Errors are limited
// to ErrEmptyInput and extraction failures wrapping ErrExtractionUnavailable;
// everything else (absent remove target, no search hits, unclassifiable
// text) is a normal response.
func (p *Pipeline) Process(ctx context.Context, req *model.CommandRequest) (*model.CommandResponse, error) {
	start := time.Now()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	tctx, cancel := context.WithTimeout(ctx, p.timeout)
	pivotText, translated := p.translator.Translate(tctx, text, req.Language)
	cancel()

	// Regex price extraction runs on the pivot text regardless of what the
	// extractor later reports; its result overrides any LLM price bound.
	priceConstraint := ExtractPriceConstraint(pivotText)

	ectx, cancel := context.WithTimeout(ctx, p.timeout)
	intent, err := p.extractor.Extract(ectx, pivotText)
	cancel()
	if err != nil {
		return nil, err
	}

	resp, err := p.dispatch(ctx, intent, pivotText, priceConstraint)
	if err != nil {
		return nil, err
	}
	resp.Translated = translated
	resp.TookMs = time.Since(start).Milliseconds()
	return resp, nil
}

func (p *Pipeline) dispatch(ctx context.Context, intent *model.Intent, pivotText string, priceConstraint *model.PriceConstraint) (*model.CommandResponse, error) {
	switch {
	case intent.Kind == model.IntentAdd:
		return p.handleAdd(ctx, intent)
	case intent.Kind == model.IntentRemove:
		return p.handleRemove(ctx, intent)
	case intent.Kind == model.IntentSearch:
		return p.handleSearch(ctx, intent, priceConstraint)
	default:
		return p.handleUnknown(ctx, pivotText)
	}
}

func (p *Pipeline) handleAdd(ctx context.Context, intent *model.Intent) (*model.CommandResponse, error) {
	qty := intent.Quantity
	if qty <= 0 {
		qty = 1
	}

	item, err := p.store.AddOrIncrement(ctx, intent.Item, qty, "")
	if err != nil {
		return nil, fmt.Errorf("failed to add %q to list: %w", intent.Item, err)
	}
	if err := p.store.RecordAdd(ctx, item.Name); err != nil {
		log.Printf("pipeline: failed to record add event for %q: %v", item.Name, err)
	}

	return &model.CommandResponse{
		Kind: model.ResultAction,
		Action: &model.ActionResult{
			Intent:       model.IntentAdd,
			Item:         item.Name,
			Quantity:     qty,
			Category:     item.Category,
			AffectedItem: &item,
		},
		Message: fmt.Sprintf("Added %d x %s to your list", qty, item.Name),
	}, nil
}

func (p *Pipeline) handleRemove(ctx context.Context, intent *model.Intent) (*model.CommandResponse, error) {
	removed, err := p.store.Remove(ctx, intent.Item)
	if err != nil {
		return nil, fmt.Errorf("failed to remove %q from list: %w", intent.Item, err)
	}

	message := fmt.Sprintf("Removed %s from your list", intent.Item)
	if removed == nil {
		message = fmt.Sprintf("%s is not on your list", intent.Item)
	}

	return &model.CommandResponse{
		Kind: model.ResultAction,
		Action: &model.ActionResult{
			Intent:       model.IntentRemove,
			Item:         intent.Item,
			AffectedItem: removed,
		},
		Message: message,
	}, nil
}

func (p *Pipeline) handleSearch(ctx context.Context, intent *model.Intent, priceConstraint *model.PriceConstraint) (*model.CommandResponse, error) {
	// A search for a class of items ("household staples") answers from the
	// generic-category tables, not the catalog.
	if label, items, ok := GenericCategory(intent.Item); ok {
		return genericCategoryResponse(label, items), nil
	}

	filters := ResolveFilters(intent.Filters, priceConstraint)
	results := p.catalog.Search(intent.Item, filters)

	listMatches, err := p.store.Search(ctx, intent.Item)
	if err != nil {
		log.Printf("pipeline: list search for %q failed: %v", intent.Item, err)
	}

	message := fmt.Sprintf("Found %d products matching %q", len(results), intent.Item)
	if len(results) == 0 {
		message = fmt.Sprintf("No products found matching %q", intent.Item)
	}

	return &model.CommandResponse{
		Kind: model.ResultSearch,
		Search: &model.SearchResult{
			Intent:      model.IntentSearch,
			Item:        intent.Item,
			Results:     results,
			Filters:     filters,
			ListMatches: listMatches,
		},
		Message: message,
	}, nil
}

func (p *Pipeline) handleUnknown(ctx context.Context, pivotText string) (*model.CommandResponse, error) {
	// The advice cascade gets first claim on unresolved text; the
	// generic-category tables only answer what it leaves behind.
	if advice := p.advisor.Classify(ctx, pivotText); advice != nil {
		return &model.CommandResponse{
			Kind:    model.ResultAdvice,
			Advice:  advice,
			Message: advice.Message,
		}, nil
	}

	if label, items, ok := GenericCategory(pivotText); ok {
		return genericCategoryResponse(label, items), nil
	}

	return &model.CommandResponse{
		Kind:    model.ResultUnknown,
		Message: "Sorry, I didn't understand that. Try something like \"add milk\" or \"find toothpaste under $4\".",
	}, nil
}

func genericCategoryResponse(label string, items []string) *model.CommandResponse {
	advice := &model.Advice{
		Type:        model.AdviceGeneric,
		Message:     fmt.Sprintf("Common %s you might need:", label),
		Suggestions: items,
	}
	return &model.CommandResponse{
		Kind:    model.ResultAdvice,
		Advice:  advice,
		Message: advice.Message,
	}
}
