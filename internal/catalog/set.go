// Package catalog implements the reconciliation pipeline that merges the
// three independently-indexed data sources (store inventory, calculated
// prices, paginated listing DOM) into one strain record per product, keyed
// by the derived product id.
package catalog

import (
	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

// Set is an insertion-ordered strain mapping. Iteration order is first-seen
// order during inventory filtering, which is also the output order of a run.
// A Set belongs to exactly one run; pipeline stages mutate it in place and
// must not retain strains beyond their call.
type Set struct {
	strains map[string]*models.Strain
	order   []string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{strains: make(map[string]*models.Strain)}
}

// Add inserts a strain under its product id. Re-adding an existing id
// silently overwrites the strain while keeping its original position.
func (s *Set) Add(strain *models.Strain) {
	id := strain.ProductID()
	if _, exists := s.strains[id]; !exists {
		s.order = append(s.order, id)
	}
	s.strains[id] = strain
}

// Get looks up a strain by product id.
func (s *Set) Get(productID string) (*models.Strain, bool) {
	strain, ok := s.strains[productID]
	return strain, ok
}

// Delete removes a strain by product id.
func (s *Set) Delete(productID string) {
	if _, exists := s.strains[productID]; !exists {
		return
	}
	delete(s.strains, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of strains in the set.
func (s *Set) Len() int {
	return len(s.strains)
}

// SKUs returns the raw SKUs in insertion order.
func (s *Set) SKUs() []string {
	skus := make([]string, 0, len(s.order))
	for _, id := range s.order {
		skus = append(skus, s.strains[id].SKU)
	}
	return skus
}

// Strains returns all strains in insertion order.
func (s *Set) Strains() []*models.Strain {
	strains := make([]*models.Strain, 0, len(s.order))
	for _, id := range s.order {
		strains = append(strains, s.strains[id])
	}
	return strains
}

// Processed returns only the fully populated strains, in insertion order.
// Partially filled strains are the expected mechanism for missing data and
// are dropped without logging.
func (s *Set) Processed() []*models.Strain {
	var processed []*models.Strain
	for _, id := range s.order {
		if strain := s.strains[id]; strain.IsProcessed() {
			processed = append(processed, strain)
		}
	}
	return processed
}
