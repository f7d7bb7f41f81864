package migrations

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// IfNotExists because the init migration also creates the table
		// on fresh databases
		_, err := db.NewCreateTable().Model((*models.Receipt)(nil)).IfNotExists().Exec(ctx)
		return err
	}, nil)
}
