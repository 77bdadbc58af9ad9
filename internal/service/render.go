package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/roguecreek/quartermaster/internal/catalog"
	"github.com/roguecreek/quartermaster/internal/domain"
)

// Render produces the stock table as a Discord-ready message body: a
// bold title followed by a fixed-width two-column table in a code
// block. Zero-quantity rows are shown; the empty branch only fires for
// a domain with no rows at all.
func (s *LedgerService) Render(ctx context.Context, dom domain.Domain) (string, error) {
	rows, err := s.Snapshot(ctx, dom)
	if err != nil {
		return "", fmt.Errorf("s.Snapshot -> %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s:**\n\n", catalog.Title(dom))

	if len(rows) == 0 {
		b.WriteString("*Nothing in stock.*\n")
		return b.String(), nil
	}

	b.WriteString("```\n")
	fmt.Fprintf(&b, "%-20s %-10s\n", "Item", "Quantity")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-20s %-10d\n", row.ItemName, row.Quantity)
	}
	b.WriteString("```\n")

	return b.String(), nil
}
