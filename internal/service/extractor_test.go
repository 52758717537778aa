package service

import (
	"context"
	"errors"
	"testing"

	"cartsense/internal/model"
)

func TestDisabledExtractor(t *testing.T) {
	var extractor Extractor = DisabledExtractor{}

	intent, err := extractor.Extract(context.Background(), "add milk")
	if intent != nil {
		t.Errorf("Extract = %+v, want nil", intent)
	}
	if !errors.Is(err, ErrExtractionUnavailable) {
		t.Errorf("error = %v, want ErrExtractionUnavailable", err)
	}
}

func TestValidateIntent(t *testing.T) {
	tests := []struct {
		name    string
		payload intentPayload
		want    *model.Intent
		wantErr bool
	}{
		{
			name:    "valid add",
			payload: intentPayload{Intent: "add", Item: "Milk", Quantity: 2, Language: "EN"},
			want:    &model.Intent{Kind: model.IntentAdd, Item: "milk", Quantity: 2, Language: "en", Source: "llm"},
		},
		{
			name:    "unknown clears item",
			payload: intentPayload{Intent: "unknown", Item: "whatever"},
			want:    &model.Intent{Kind: model.IntentUnknown, Source: "llm"},
		},
		{
			name:    "kind outside the contract",
			payload: intentPayload{Intent: "purchase", Item: "milk"},
			wantErr: true,
		},
		{
			name:    "non-unknown intent without item",
			payload: intentPayload{Intent: "remove"},
			wantErr: true,
		},
		{
			name:    "negative quantity",
			payload: intentPayload{Intent: "add", Item: "milk", Quantity: -1},
			wantErr: true,
		},
		{
			name:    "whitespace-only item counts as missing",
			payload: intentPayload{Intent: "search", Item: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateIntent(&tt.payload)
			if tt.wantErr {
				if err == nil {
					t.Fatal("validateIntent returned nil error")
				}
				if !errors.Is(err, ErrExtractionUnavailable) {
					t.Errorf("error %v does not wrap ErrExtractionUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateIntent: %v", err)
			}
			if got.Kind != tt.want.Kind || got.Item != tt.want.Item ||
				got.Quantity != tt.want.Quantity || got.Language != tt.want.Language ||
				got.Source != tt.want.Source {
				t.Errorf("validateIntent = %+v, want %+v", got, tt.want)
			}
		})
	}
}
