package utils

import "testing"

type intentDoc struct {
	Intent string `json:"intent"`
	Item   string `json:"item"`
}

func TestParseAIJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    intentDoc
		wantErr bool
	}{
		{
			name:  "pure JSON",
			input: `{"intent": "add", "item": "milk"}`,
			want:  intentDoc{Intent: "add", Item: "milk"},
		},
		{
			name:  "markdown json fence",
			input: "```json\n{\"intent\": \"add\", \"item\": \"milk\"}\n```",
			want:  intentDoc{Intent: "add", Item: "milk"},
		},
		{
			name:  "bare fence",
			input: "```\n{\"intent\": \"remove\", \"item\": \"onion\"}\n```",
			want:  intentDoc{Intent: "remove", Item: "onion"},
		},
		{
			name:  "surrounding prose",
			input: `Sure! Here is the parsed intent: {"intent": "search", "item": "toothpaste"} Let me know if you need anything else.`,
			want:  intentDoc{Intent: "search", Item: "toothpaste"},
		},
		{
			name:  "braces inside string literals",
			input: `{"intent": "add", "item": "weird {thing}"}`,
			want:  intentDoc{Intent: "add", Item: "weird {thing}"},
		},
		{
			name:    "no JSON at all",
			input:   "I could not parse that request.",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			input:   `{"intent": "add", "item": "milk"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got intentDoc
			err := ParseAIJSON(tt.input, &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAIJSON(%q) returned nil error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAIJSON(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	input := `prefix {"a": {"b": 1}} suffix {"c": 2}`
	want := `{"a": {"b": 1}}`
	if got := ExtractJSONObject(input); got != want {
		t.Errorf("ExtractJSONObject = %q, want %q", got, want)
	}

	if got := ExtractJSONObject("no braces here"); got != "" {
		t.Errorf("ExtractJSONObject = %q, want empty", got)
	}
}
