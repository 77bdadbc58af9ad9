package domain

// Domain identifies one of the independently tracked inventories.
type Domain string

const (
	DomainAmmunition Domain = "ammunition"
	DomainMedical    Domain = "medical"
)

// TableName returns the stock table backing this domain.
func (d Domain) TableName() string {
	return "stock_" + string(d)
}

// HandleKey returns the bot_state key under which the domain's
// display handle is persisted.
func (d Domain) HandleKey() string {
	return "display_handle_" + string(d)
}

// CatalogItem is one trackable item. DisplayLabel is cosmetic and may be empty.
type CatalogItem struct {
	Name         string
	DisplayLabel string
}

// StockRow is a point-in-time quantity for one catalog item.
type StockRow struct {
	ItemName string
	Quantity int
}

// DisplayHandle is an opaque reference to where a rendered snapshot
// lives. The storage layer never interprets it.
type DisplayHandle string
