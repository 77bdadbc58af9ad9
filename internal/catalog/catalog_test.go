package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roguecreek/quartermaster/internal/domain"
)

func TestItems(t *testing.T) {
	ammo := Items(domain.DomainAmmunition)
	require.Len(t, ammo, 8)
	assert.Equal(t, "5.56", ammo[0].Name)
	assert.Equal(t, "7.62x54R", ammo[7].Name)

	medical := Items(domain.DomainMedical)
	require.Len(t, medical, 11)
	assert.Equal(t, "Morphine", medical[0].Name)

	assert.Empty(t, Items(domain.Domain("bogus")))
}

func TestItemsIsStable(t *testing.T) {
	first := Items(domain.DomainAmmunition)
	second := Items(domain.DomainAmmunition)

	assert.Equal(t, first, second)
}

func TestItemsReturnsCopy(t *testing.T) {
	items := Items(domain.DomainMedical)
	items[0].Name = "mutated"

	assert.Equal(t, "Morphine", Items(domain.DomainMedical)[0].Name)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(domain.DomainAmmunition, "5.56"))
	assert.True(t, Contains(domain.DomainMedical, "Blood Kit"))
	assert.False(t, Contains(domain.DomainAmmunition, "Morphine"))
	assert.False(t, Contains(domain.DomainMedical, "nonexistent"))
}

func TestDomains(t *testing.T) {
	assert.Equal(t, []domain.Domain{domain.DomainAmmunition, domain.DomainMedical}, Domains())
}

func TestRadioStations(t *testing.T) {
	require.Len(t, RadioStations, 8)
	assert.Equal(t, 87.8, RadioStations[0])
}
