/*
Package catalog provides the product catalog, store directory, and
redemption option catalog.

PURPOSE:
  Read-only reference data for the rewards engine. Products carry
  nutrition facts; the catalog computes each product's health score once
  at load time so the engine and API never rescore on the hot path
  (rescoring is deterministic, so the cached value can never go stale).

SEE ALSO:
  - products.go: Built-in product data
  - stores.go: Grocery store directory
  - redemptions.go: Redemption options
  - goals.go: Health goal directory
*/
package catalog

import "github.com/nutribucks/rewards-engine/engine"

// Catalog is an immutable, scored product catalog.
type Catalog struct {
	products []engine.Product
	byID     map[engine.ProductID]engine.Product
}

// New builds the catalog from the built-in product data, computing each
// product's health score.
func New() *Catalog {
	return FromProducts(builtinProducts())
}

// FromProducts builds a catalog from arbitrary product data (tests,
// alternative data sets). Products without a score are scored here.
func FromProducts(products []engine.Product) *Catalog {
	scored := make([]engine.Product, len(products))
	byID := make(map[engine.ProductID]engine.Product, len(products))

	for i, p := range products {
		if p.Score == nil {
			s := engine.Score(p.Nutrition, p.Category)
			p.Score = &s
		}
		scored[i] = p
		byID[p.ID] = p
	}

	return &Catalog{products: scored, byID: byID}
}

// All returns every product.
func (c *Catalog) All() []engine.Product {
	out := make([]engine.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product.
func (c *Catalog) ByID(id engine.ProductID) (engine.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the id -> product map consumed by the points and
// challenge calculations.
func (c *Catalog) Products() map[engine.ProductID]engine.Product {
	out := make(map[engine.ProductID]engine.Product, len(c.byID))
	for id, p := range c.byID {
		out[id] = p
	}
	return out
}

// ByCategory returns the products in one category, in catalog order.
func (c *Catalog) ByCategory(cat engine.ProductCategory) []engine.Product {
	var out []engine.Product
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the catalog size.
func (c *Catalog) Len() int {
	return len(c.products)
}
