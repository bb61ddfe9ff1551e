package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c := Default()

	require.Equal(t, 40, c.Len())
	assert.Same(t, c, Default(), "catalog is parsed once")

	ids := c.IDs()
	assert.Equal(t, "matches-burned", ids[0])
	assert.Equal(t, "clarity-ignored", ids[len(ids)-1])

	seen := map[string]bool{}
	for _, item := range c.All() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Label, item.ID)
		assert.NotEmpty(t, item.Unit, item.ID)
		assert.NotEmpty(t, item.CalculationHint, item.ID)
		assert.NotEmpty(t, item.AffectedBy, item.ID)
	}
}

func TestDefault_RowsMatchPublishedRates(t *testing.T) {
	c := Default()

	tests := []struct {
		id    string
		rate  domain.Rate
		label string
		tags  []domain.FactorTag
	}{
		{"matches-burned", domain.Rate{PerWeek: 1.1}, "Matches you will burn", []domain.FactorTag{domain.TagLifestyle, domain.TagHabits}},
		{"candles-forgotten", domain.Rate{PerYear: 1.8}, "Candles you will forget about", []domain.FactorTag{domain.TagLifestyle, domain.TagAge}},
		{"batteries-just-in-case", domain.Rate{PerYear: 4.1}, `Batteries you’ll throw away "just in case"`, []domain.FactorTag{domain.TagLifestyle}},
		{"minutes-doorways", domain.Rate{PerWeek: 12}, "Minutes spent standing in doorways", []domain.FactorTag{domain.TagHabits}},
		{"weekends-underestimated", domain.Rate{PerYear: 20}, "Weekends underestimated", []domain.FactorTag{domain.TagLifestyle, domain.TagAge}},
		{"emails-reread", domain.Rate{PerWeek: 5}, "Emails reread but not sent", []domain.FactorTag{domain.TagOptimism, domain.TagHabits}},
		{"clarity-ignored", domain.Rate{PerWeek: 1.1}, "Moments of sudden clarity ignored", []domain.FactorTag{domain.TagOptimism}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			item, ok := c.ByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.rate, item.Rate)
			assert.Equal(t, tt.rate, c.Rate(tt.id))
			assert.Equal(t, tt.label, item.Label)
			assert.Equal(t, tt.tags, item.AffectedBy)
		})
	}
}

func TestCatalog_UnknownID(t *testing.T) {
	c := Default()

	_, ok := c.ByID("unicorns-ridden")
	assert.False(t, ok)
	assert.True(t, c.Rate("unicorns-ridden").IsZero())
}

func TestCatalog_PerYearRowsCarryAgeOrLifestyle(t *testing.T) {
	perYear := 0
	for _, item := range Default().All() {
		if item.Rate.PerYear > 0 {
			perYear++
			assert.True(t, item.AffectedByTag(domain.TagLifestyle), item.ID)
		}
	}
	assert.Equal(t, 7, perYear)
}

func TestCatalog_Sample(t *testing.T) {
	c := Default()
	rng := rand.New(rand.NewPCG(1, 2))

	sample := c.Sample(DefaultSampleSize, rng)
	require.Len(t, sample, DefaultSampleSize)

	seen := map[string]bool{}
	for _, item := range sample {
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
		_, ok := c.ByID(item.ID)
		assert.True(t, ok)
	}

	assert.Len(t, c.Sample(0, rng), c.Len())
	assert.Len(t, c.Sample(500, nil), c.Len())
	assert.Equal(t, 40, c.Len(), "sampling never mutates the catalog")
	assert.Equal(t, "matches-burned", c.IDs()[0])
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("items: [: bad"))
	assert.Error(t, err)

	dup := `
items:
  - {id: a, label: A, unit: u, rate: {per_week: 1}}
  - {id: a, label: B, unit: u, rate: {per_week: 2}}
`
	_, err = Parse([]byte(dup))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")

	badTag := `
items:
  - {id: a, label: A, unit: u, affected_by: [luck], rate: {per_week: 1}}
`
	_, err = Parse([]byte(badTag))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown factor tag")

	ok := `
items:
  - {id: naps, label: Naps, unit: naps, affected_by: [health], rate: {per_year: 3}}
`
	c, err := Parse([]byte(ok))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 3.0, c.Rate("naps").PerYear)
}
