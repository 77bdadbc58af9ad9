package response

import "github.com/roguecreek/quartermaster/internal/domain"

type StockRow struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type StockTable struct {
	Domain   string     `json:"domain"`
	Rows     []StockRow `json:"rows"`
	Rendered string     `json:"rendered"`
}

func NewStockTable(dom domain.Domain, rows []domain.StockRow, rendered string) StockTable {
	resp := StockTable{
		Domain:   string(dom),
		Rows:     make([]StockRow, len(rows)),
		Rendered: rendered,
	}
	for i, row := range rows {
		resp.Rows[i] = StockRow{
			Item:     row.ItemName,
			Quantity: row.Quantity,
		}
	}

	return resp
}
