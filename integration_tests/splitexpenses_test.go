package integration_tests

import (
	"context"
	"testing"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitExpenseLifecycle(t *testing.T) {
	svc, err := NesteggTestServiceInit(nil)
	assert.Nil(t, err)
	defer clearTable(svc, "users")
	defer clearTable(svc, "split_expenses")

	userIds, _, err := createUsers(svc, 1)
	assert.Nil(t, err)
	ctx := context.Background()

	expense := &models.SplitExpense{
		UserID:      userIds[0],
		Description: "dinner",
		TotalAmount: decimal.NewFromInt(90),
		Splits: []*models.ExpenseSplit{
			{Participant: "alice", Share: decimal.NewFromInt(30)},
			{Participant: "bob", Share: decimal.NewFromInt(60)},
		},
	}
	assert.NoError(t, svc.CreateSplitExpense(ctx, expense))
	assert.True(t, expense.ID > 0)

	expenses, err := svc.SplitExpensesFor(ctx, userIds[0])
	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Len(t, expenses[0].Splits, 2)

	// deleting the expense removes its splits through the cascade
	assert.NoError(t, svc.DeleteSplitExpense(ctx, userIds[0], expense.ID))
	expenses, err = svc.SplitExpensesFor(ctx, userIds[0])
	assert.NoError(t, err)
	assert.Len(t, expenses, 0)

	var count int
	err = svc.DB.NewSelect().Model((*models.ExpenseSplit)(nil)).ColumnExpr("count(*)").Scan(ctx, &count)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}
