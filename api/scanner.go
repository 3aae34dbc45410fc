/*
scanner.go - Simulated receipt scanning

PURPOSE:
  There is no OCR or store integration in this build; the scan endpoint
  simulates one by sampling a small random basket from the catalog. The
  sampled basket then flows through the exact same submission path as a
  manual entry.

SEE ALSO:
  - handlers.go: ScanReceipt / submitBasket
*/
package api

import (
	"math/rand"

	"github.com/nutribucks/rewards-engine/engine"
)

const (
	scanMinProducts = 3
	scanMaxProducts = 6
	scanMaxQuantity = 2
)

// randomBasket samples 3-6 distinct catalog products with quantity 1-2
// each. Smaller catalogs yield smaller baskets.
func randomBasket(products []engine.Product, rng *rand.Rand) []engine.BasketItem {
	if len(products) == 0 {
		return nil
	}

	count := scanMinProducts + rng.Intn(scanMaxProducts-scanMinProducts+1)
	if count > len(products) {
		count = len(products)
	}

	shuffled := make([]engine.Product, len(products))
	copy(shuffled, products)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	basket := make([]engine.BasketItem, count)
	for i := 0; i < count; i++ {
		basket[i] = engine.BasketItem{
			ProductID: shuffled[i].ID,
			Quantity:  1 + rng.Intn(scanMaxQuantity),
		}
	}
	return basket
}
