package repository

import "strings"

// categoryKeywords maps category labels to name fragments. Used to default
// the category of a list item when the caller does not supply one. Evaluated
// in declaration order so an item that matches two categories always lands
// in the same one.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"produce", []string{"apple", "banana", "orange", "tomato", "onion", "potato", "spinach", "lettuce", "carrot", "fruit", "vegetable"}},
	{"dairy", []string{"milk", "yogurt", "cheese", "butter", "cream", "egg"}},
	{"bakery", []string{"bread", "bun", "bagel", "croissant", "cake"}},
	{"meat", []string{"chicken", "beef", "pork", "fish", "salmon", "mutton"}},
	{"pantry", []string{"rice", "pasta", "flour", "sugar", "salt", "oil", "oats", "honey", "lentil", "bean", "spice", "pepper"}},
	{"beverages", []string{"coffee", "tea", "juice", "soda"}},
	{"personal care", []string{"toothpaste", "shampoo", "lotion", "deodorant", "hand soap"}},
	{"household", []string{"detergent", "cleaner", "towel", "tissue", "toilet paper", "sponge", "dish soap", "soap"}},
	{"snacks", []string{"chips", "biscuit", "cookie", "chocolate", "popcorn"}},
}

// CategoryFor returns the default category for an item name, or "other" when
// no keyword matches. Matching is case-insensitive substring containment in
// either direction.
func CategoryFor(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "other"
	}
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) || strings.Contains(kw, name) {
				return entry.category
			}
		}
	}
	return "other"
}
