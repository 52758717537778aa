package repository

import (
	"sort"
	"strings"

	"cartsense/internal/model"
)

// Catalog is the fixed in-memory product catalog. It is immutable reference
// data: loaded once, never mutated, safe for concurrent reads.
type Catalog struct {
	products []model.Product
}

// NewCatalog returns a catalog over the given products. Declaration order is
// preserved and used as the tie-breaker when sorting results by price.
func NewCatalog(products []model.Product) *Catalog {
	return &Catalog{products: products}
}

// DefaultCatalog returns the built-in reference catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(referenceProducts)
}

// Products returns the raw catalog contents.
func (c *Catalog) Products() []model.Product {
	return c.products
}

// Search evaluates the catalog against the query and constraint set.
//
// Name matching is bidirectional substring containment: "apple" matches
// "apples" and a long phrase like "a kind of apples" matches the product
// "apples". Every active filter is a strict AND predicate. Results are
// sorted ascending by price with a stable sort, so equal-priced products
// retain catalog declaration order.
func (c *Catalog) Search(query string, filters *model.Filters) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	var results []model.Product
	for _, p := range c.products {
		if !nameMatches(p.Name, query) {
			continue
		}
		if !matchesFilters(p, filters) {
			continue
		}
		results = append(results, p)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})

	return results
}

func nameMatches(name, query string) bool {
	if query == "" {
		return false
	}
	name = strings.ToLower(name)
	return strings.Contains(name, query) || strings.Contains(query, name)
}

func matchesFilters(p model.Product, f *model.Filters) bool {
	if f == nil {
		return true
	}
	if f.Brand != nil && !strings.Contains(strings.ToLower(p.Brand), strings.ToLower(*f.Brand)) {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.Size != nil && !strings.Contains(strings.ToLower(p.Size), strings.ToLower(*f.Size)) {
		return false
	}
	if f.Qualifier != nil {
		q := strings.ToLower(*f.Qualifier)
		if !p.HasTag(q) && !strings.Contains(strings.ToLower(p.Name), q) {
			return false
		}
	}
	return true
}

// referenceProducts is the built-in catalog. Tags are lowercase by
// convention; the qualifier matcher relies on that.
var referenceProducts = []model.Product{
	{ID: 1, Name: "apples", Brand: "FreshFarm", Size: "1 kg", Price: 3.99, Category: "produce", Tags: model.JSONArray{"fruit", "fresh", "seasonal"}},
	{ID: 2, Name: "green apples", Brand: "OrchardBest", Size: "1 kg", Price: 4.49, Category: "produce", Tags: model.JSONArray{"fruit", "fresh", "tart"}},
	{ID: 3, Name: "bananas", Brand: "FreshFarm", Size: "1 kg", Price: 1.99, Category: "produce", Tags: model.JSONArray{"fruit", "fresh"}},
	{ID: 4, Name: "oranges", Brand: "Citrano", Size: "1 kg", Price: 3.49, Category: "produce", Tags: model.JSONArray{"fruit", "fresh", "citrus"}},
	{ID: 5, Name: "tomatoes", Brand: "FreshFarm", Size: "500 g", Price: 2.79, Category: "produce", Tags: model.JSONArray{"vegetable", "fresh"}},
	{ID: 6, Name: "onions", Brand: "FreshFarm", Size: "1 kg", Price: 1.49, Category: "produce", Tags: model.JSONArray{"vegetable", "staple"}},
	{ID: 7, Name: "potatoes", Brand: "FarmDirect", Size: "2 kg", Price: 2.99, Category: "produce", Tags: model.JSONArray{"vegetable", "staple"}},
	{ID: 8, Name: "spinach", Brand: "GreenLeaf", Size: "250 g", Price: 2.29, Category: "produce", Tags: model.JSONArray{"vegetable", "fresh", "healthy"}},
	{ID: 9, Name: "milk", Brand: "DairyPure", Size: "1 l", Price: 2.49, Category: "dairy", Tags: model.JSONArray{"dairy", "staple", "daily"}},
	{ID: 10, Name: "almond milk", Brand: "NutriPlant", Size: "1 l", Price: 3.99, Category: "dairy", Tags: model.JSONArray{"dairy-free", "plant-based", "healthy"}},
	{ID: 11, Name: "greek yogurt", Brand: "DairyPure", Size: "500 g", Price: 3.49, Category: "dairy", Tags: model.JSONArray{"dairy", "protein", "healthy"}},
	{ID: 12, Name: "cheddar cheese", Brand: "Alpenhof", Size: "200 g", Price: 4.99, Category: "dairy", Tags: model.JSONArray{"dairy", "cheese"}},
	{ID: 13, Name: "butter", Brand: "DairyPure", Size: "250 g", Price: 3.29, Category: "dairy", Tags: model.JSONArray{"dairy", "staple"}},
	{ID: 14, Name: "eggs", Brand: "HappyHen", Size: "12 pack", Price: 3.79, Category: "dairy", Tags: model.JSONArray{"protein", "staple", "daily"}},
	{ID: 15, Name: "whole wheat bread", Brand: "BakeHouse", Size: "700 g", Price: 2.89, Category: "bakery", Tags: model.JSONArray{"bread", "staple", "wholegrain"}},
	{ID: 16, Name: "white bread", Brand: "BakeHouse", Size: "700 g", Price: 2.39, Category: "bakery", Tags: model.JSONArray{"bread", "staple"}},
	{ID: 17, Name: "basmati rice", Brand: "GoldenGrain", Size: "5 kg", Price: 11.99, Category: "pantry", Tags: model.JSONArray{"grain", "staple"}},
	{ID: 18, Name: "rice", Brand: "GoldenGrain", Size: "1 kg", Price: 2.99, Category: "pantry", Tags: model.JSONArray{"grain", "staple", "basic"}},
	{ID: 19, Name: "pasta", Brand: "CasaNostra", Size: "500 g", Price: 1.79, Category: "pantry", Tags: model.JSONArray{"grain", "staple"}},
	{ID: 20, Name: "olive oil", Brand: "Oliveto", Size: "750 ml", Price: 8.99, Category: "pantry", Tags: model.JSONArray{"oil", "staple", "healthy"}},
	{ID: 21, Name: "sunflower oil", Brand: "SunPress", Size: "1 l", Price: 4.49, Category: "pantry", Tags: model.JSONArray{"oil", "staple"}},
	{ID: 22, Name: "sugar", Brand: "SweetCo", Size: "1 kg", Price: 1.99, Category: "pantry", Tags: model.JSONArray{"baking", "staple", "basic"}},
	{ID: 23, Name: "salt", Brand: "SeaCrystal", Size: "500 g", Price: 0.99, Category: "pantry", Tags: model.JSONArray{"seasoning", "staple", "basic"}},
	{ID: 24, Name: "black pepper", Brand: "SpiceRoute", Size: "100 g", Price: 2.49, Category: "pantry", Tags: model.JSONArray{"seasoning", "spice"}},
	{ID: 25, Name: "ground coffee", Brand: "MorningRoast", Size: "250 g", Price: 6.49, Category: "beverages", Tags: model.JSONArray{"coffee", "daily"}},
	{ID: 26, Name: "green tea", Brand: "LeafSong", Size: "50 bags", Price: 4.29, Category: "beverages", Tags: model.JSONArray{"tea", "healthy"}},
	{ID: 27, Name: "orange juice", Brand: "Citrano", Size: "1 l", Price: 3.29, Category: "beverages", Tags: model.JSONArray{"juice", "fruit"}},
	{ID: 28, Name: "toothpaste", Brand: "DentaFresh", Size: "100 ml", Price: 2.49, Category: "personal care", Tags: model.JSONArray{"hygiene", "household", "essential"}},
	{ID: 29, Name: "whitening toothpaste", Brand: "PearlSmile", Size: "75 ml", Price: 4.79, Category: "personal care", Tags: model.JSONArray{"hygiene", "household"}},
	{ID: 30, Name: "shampoo", Brand: "SilkWave", Size: "400 ml", Price: 5.49, Category: "personal care", Tags: model.JSONArray{"hygiene", "household"}},
	{ID: 31, Name: "hand soap", Brand: "PureCare", Size: "250 ml", Price: 1.99, Category: "personal care", Tags: model.JSONArray{"hygiene", "household", "essential"}},
	{ID: 32, Name: "dish soap", Brand: "SparkleClean", Size: "500 ml", Price: 2.29, Category: "household", Tags: model.JSONArray{"cleaning", "household", "essential"}},
	{ID: 33, Name: "laundry detergent", Brand: "SparkleClean", Size: "2 l", Price: 7.99, Category: "household", Tags: model.JSONArray{"cleaning", "household"}},
	{ID: 34, Name: "paper towels", Brand: "SoftRoll", Size: "6 rolls", Price: 5.99, Category: "household", Tags: model.JSONArray{"cleaning", "household", "essential"}},
	{ID: 35, Name: "toilet paper", Brand: "SoftRoll", Size: "12 rolls", Price: 6.99, Category: "household", Tags: model.JSONArray{"household", "essential"}},
	{ID: 36, Name: "chicken breast", Brand: "FarmDirect", Size: "500 g", Price: 6.49, Category: "meat", Tags: model.JSONArray{"protein", "fresh"}},
	{ID: 37, Name: "salmon fillet", Brand: "NorthCatch", Size: "300 g", Price: 9.99, Category: "meat", Tags: model.JSONArray{"protein", "fish", "healthy"}},
	{ID: 38, Name: "oats", Brand: "GoldenGrain", Size: "1 kg", Price: 3.49, Category: "pantry", Tags: model.JSONArray{"grain", "breakfast", "healthy"}},
	{ID: 39, Name: "peanut butter", Brand: "NutriPlant", Size: "350 g", Price: 4.29, Category: "pantry", Tags: model.JSONArray{"spread", "protein"}},
	{ID: 40, Name: "honey", Brand: "BeeWell", Size: "350 g", Price: 5.79, Category: "pantry", Tags: model.JSONArray{"sweetener", "natural"}},
}
