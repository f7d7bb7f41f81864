package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- at most one snapshot per user and month, reconciliation relies on
			-- ON CONFLICT against this index
				CREATE UNIQUE INDEX IF NOT EXISTS networth_snapshots_user_id_period_idx
				ON networth_snapshots (user_id, period);

			-- monetary values are never negative
				ALTER TABLE assets
				ADD CONSTRAINT check_asset_value_positive
				CHECK (value >= 0);

				ALTER TABLE liabilities
				ADD CONSTRAINT check_liability_amount_positive
				CHECK (amount_due >= 0);

			-- every split must belong to an existing expense
				ALTER TABLE expense_splits
				ADD CONSTRAINT fk_expense_splits_split_expense
				FOREIGN KEY (split_expense_id) REFERENCES split_expenses(id) ON DELETE CASCADE;
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
