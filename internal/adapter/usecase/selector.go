package usecase

import (
	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var _ port.Selector = PriceSelector{}

// PriceSelector picks the candidate with the highest price. Ties on price
// go to the smallest id, so the result only depends on the candidate set
// and not on its order.
type PriceSelector struct{}

// PickBest returns the best candidate, or false when candidates is empty.
func (PriceSelector) PickBest(candidates []domain.Campaign) (domain.Campaign, bool) {
	if len(candidates) == 0 {
		return domain.Campaign{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if outranks(c, best) {
			best = c
		}
	}
	return best, true
}

func outranks(a, b domain.Campaign) bool {
	if a.Price != b.Price {
		return a.Price > b.Price
	}
	return a.ID < b.ID
}
