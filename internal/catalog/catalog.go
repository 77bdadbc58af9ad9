// Package catalog defines the fixed universe of trackable items per domain.
// Membership is decided at compile time; nothing here mutates at runtime.
package catalog

import "github.com/roguecreek/quartermaster/internal/domain"

var ammunition = []domain.CatalogItem{
	{Name: "5.56", DisplayLabel: "5.56 NATO"},
	{Name: "5.45", DisplayLabel: "5.45x39"},
	{Name: "7.62x39", DisplayLabel: "7.62x39"},
	{Name: "308Win", DisplayLabel: ".308 Winchester"},
	{Name: "Cal12C", DisplayLabel: "12ga Buckshot"},
	{Name: "Cal12R", DisplayLabel: "12ga Slug"},
	{Name: "9x39", DisplayLabel: "9x39"},
	{Name: "7.62x54R", DisplayLabel: "7.62x54R"},
}

var medical = []domain.CatalogItem{
	{Name: "Morphine"},
	{Name: "Tetracycline"},
	{Name: "Charcoal"},
	{Name: "Vitamins"},
	{Name: "Splints"},
	{Name: "Blood Kit"},
	{Name: "O+"},
	{Name: "O-"},
	{Name: "Saline"},
	{Name: "IV Kit"},
	{Name: "Surgery Kit"},
}

// RadioStations are the frequencies the radio command picks from.
var RadioStations = []float64{87.8, 89.5, 91.3, 91.9, 94.6, 96.6, 99.7, 102.5}

// Domains lists every tracked domain in display order.
func Domains() []domain.Domain {
	return []domain.Domain{domain.DomainAmmunition, domain.DomainMedical}
}

// Items returns the ordered item list for the given domain.
// The returned slice is a copy; callers may not grow the catalog.
// An unknown domain yields an empty list.
func Items(d domain.Domain) []domain.CatalogItem {
	var src []domain.CatalogItem
	switch d {
	case domain.DomainAmmunition:
		src = ammunition
	case domain.DomainMedical:
		src = medical
	default:
		return nil
	}

	items := make([]domain.CatalogItem, len(src))
	copy(items, src)
	return items
}

// Contains reports whether the named item belongs to the domain's catalog.
func Contains(d domain.Domain, name string) bool {
	for _, item := range Items(d) {
		if item.Name == name {
			return true
		}
	}
	return false
}

// Title returns the heading used when rendering the domain's stock table.
func Title(d domain.Domain) string {
	switch d {
	case domain.DomainAmmunition:
		return "Current ammunition stocks"
	case domain.DomainMedical:
		return "Current medical stocks"
	default:
		return "Current stocks"
	}
}
