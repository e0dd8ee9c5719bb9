package pricing

import (
	"context"
	"fmt"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/infra/db/postgres"
)

// LoadTable reads the price table from Postgres. Rows are ordered the
// way the lookup scans them, so range partitioning in the data keeps
// first-match behavior stable.
func LoadTable(ctx context.Context, db *postgres.DB) (*Table, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT product, min_qty, max_qty, tier,
		       unit_price, same_color_add, extra_position_add, full_color_add
		FROM price_table
		ORDER BY product, tier, min_qty`)
	if err != nil {
		return nil, fmt.Errorf("query price_table: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tier string
		if err := rows.Scan(&e.Product, &e.MinQty, &e.MaxQty, &tier,
			&e.UnitPrice, &e.SameColorAdd, &e.ExtraPositionAdd, &e.FullColorAdd); err != nil {
			return nil, fmt.Errorf("scan price_table row: %w", err)
		}
		e.Tier = Tier(tier)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read price_table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("price_table is empty")
	}
	return NewTable(entries), nil
}
