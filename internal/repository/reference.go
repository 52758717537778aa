package repository

import (
	"sort"
	"strings"
)

// Fixed reference tables consumed by the advice classifier. These mirror the
// catalog: loaded once, read-only, safe for concurrent use.

// seasonalByMonth maps a month index (0 = January) to in-season items.
var seasonalByMonth = [12][]string{
	{"oranges", "kale", "leeks"},                    // January
	{"oranges", "grapefruit", "cauliflower"},        // February
	{"spinach", "peas", "artichokes"},               // March
	{"asparagus", "strawberries", "spinach"},        // April
	{"strawberries", "cherries", "lettuce"},         // May
	{"watermelon", "peaches", "zucchini"},           // June
	{"watermelon", "corn", "berries"},               // July
	{"peaches", "tomatoes", "corn"},                 // August
	{"apples", "grapes", "pumpkin"},                 // September
	{"apples", "pumpkin", "sweet potatoes"},         // October
	{"cranberries", "pumpkin", "pears"},             // November
	{"oranges", "pomegranates", "brussels sprouts"}, // December
}

// SeasonalItems returns the in-season items for a month index (0-11).
func SeasonalItems(monthIndex int) []string {
	if monthIndex < 0 || monthIndex > 11 {
		return nil
	}
	return seasonalByMonth[monthIndex]
}

// substitutes maps a canonical item name to known alternatives.
var substitutes = map[string][]string{
	"milk":    {"almond milk", "oat milk", "soy milk"},
	"butter":  {"margarine", "coconut oil", "olive oil"},
	"sugar":   {"honey", "maple syrup", "stevia"},
	"eggs":    {"applesauce", "mashed banana", "flaxseed meal"},
	"bread":   {"tortillas", "rice cakes", "lettuce wraps"},
	"pasta":   {"zucchini noodles", "rice", "quinoa"},
	"rice":    {"quinoa", "cauliflower rice", "couscous"},
	"yogurt":  {"greek yogurt", "coconut yogurt", "kefir"},
	"cheese":  {"nutritional yeast", "vegan cheese", "tofu"},
	"coffee":  {"green tea", "chicory coffee", "matcha"},
	"chicken": {"tofu", "chickpeas", "mushrooms"},
}

// SubstitutesFor looks up known substitutes for an item: first by exact key,
// then by substring containment in either direction, keys checked in sorted
// order so an item matching several keys always resolves the same way.
// Returns nil when the item is unknown.
func SubstitutesFor(item string) []string {
	item = strings.ToLower(strings.TrimSpace(item))
	if item == "" {
		return nil
	}
	if subs, ok := substitutes[item]; ok {
		return subs
	}
	keys := make([]string, 0, len(substitutes))
	for key := range substitutes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(item, key) || strings.Contains(key, item) {
			return substitutes[key]
		}
	}
	return nil
}

// healthyOptions is the fixed pool the health-advice handler samples from.
var healthyOptions = []string{
	"spinach", "greek yogurt", "oats", "almonds", "salmon fillet",
	"green tea", "blueberries", "quinoa", "olive oil", "broccoli",
}

// HealthyOptions returns the fixed healthy-items pool.
func HealthyOptions() []string {
	return healthyOptions
}

// frequentItems is the generic fallback list: things most households
// repeatedly need.
var frequentItems = []string{"milk", "eggs", "bread"}

// FrequentItems returns the top frequently-needed items.
func FrequentItems() []string {
	return frequentItems
}

// genericCategories maps a generic-category label to its fixed item list.
// The pipeline answers "household staples" style requests from these rather
// than running a catalog search.
var genericCategories = map[string][]string{
	"staples":    {"rice", "flour", "sugar", "salt", "oil", "milk", "eggs", "bread"},
	"household":  {"dish soap", "laundry detergent", "paper towels", "toilet paper", "hand soap"},
	"essentials": {"milk", "bread", "eggs", "rice", "toothpaste", "toilet paper", "dish soap"},
}

// GenericCategoryItems returns the fixed list for a generic category label,
// or nil when the label is unknown.
func GenericCategoryItems(label string) []string {
	return genericCategories[label]
}
