// Package catalog holds the static table of life assumption items.
//
// The table is embedded as YAML and parsed once on first use; after that it
// is read-only. Adding an item only requires a new row in catalog.yaml as long
// as its tags come from the existing factor vocabulary.
package catalog

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rgehrsitz/countdown/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultSampleSize is the number of items shown per "new set of assumptions"
const DefaultSampleSize = 9

//go:embed catalog.yaml
var catalogYAML []byte

type document struct {
	Items []domain.LifeAssumption `yaml:"items"`
}

// Catalog is an immutable, ordered set of life assumption items
type Catalog struct {
	items []domain.LifeAssumption
	byID  map[string]int
}

var (
	loadOnce sync.Once
	builtin  *Catalog
	loadErr  error
)

// Default returns the embedded catalog. It panics if the embedded document is
// invalid, which can only happen through a bad edit to catalog.yaml.
func Default() *Catalog {
	loadOnce.Do(func() {
		builtin, loadErr = Parse(catalogYAML)
	})
	if loadErr != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", loadErr))
	}
	return builtin
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return New(doc.Items)
}

// New builds a catalog from rows, rejecting invalid rows and duplicate ids
func New(items []domain.LifeAssumption) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.LifeAssumption, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d (%s) validation failed: %w", i, item.ID, err)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, item.ID)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Len returns the number of items
func (c *Catalog) Len() int { return len(c.items) }

// All returns a copy of every item in catalog order
func (c *Catalog) All() []domain.LifeAssumption {
	out := make([]domain.LifeAssumption, len(c.items))
	copy(out, c.items)
	return out
}

// IDs returns the item ids in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID
	}
	return ids
}

// ByID looks up an item
func (c *Catalog) ByID(id string) (domain.LifeAssumption, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.LifeAssumption{}, false
	}
	return c.items[idx], true
}

// Rate returns the base rate for an id; unknown ids have a zero rate
func (c *Catalog) Rate(id string) domain.Rate {
	if item, ok := c.ByID(id); ok {
		return item.Rate
	}
	return domain.Rate{}
}

// Sample returns n distinct items in shuffled order. n <= 0 or n larger than
// the catalog returns every item, shuffled.
func (c *Catalog) Sample(n int, rng *rand.Rand) []domain.LifeAssumption {
	shuffled := c.All()
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n <= 0 || n > len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}
