package transport

import (
	"net/http"

	"github.com/getnestegg/nestegg/controllers"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.NesteggService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, adminMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.POST("/auth", controllers.NewAuthController(svc).Auth, strictRateLimitMiddleware, logMw)
	if svc.Config.AllowAccountCreation {
		e.POST("/v2/users", controllers.NewCreateUserController(svc).CreateUser, strictRateLimitMiddleware, adminMw, logMw)
	}
	//require admin token for update user endpoint
	if svc.Config.AdminToken != "" {
		e.PUT("/v2/admin/users", controllers.NewUpdateUserController(svc).UpdateUser, strictRateLimitMiddleware, adminMw)
	}

	assetCtrl := controllers.NewAssetController(svc)
	secured.GET("/v2/assets", assetCtrl.GetAssets)
	secured.POST("/v2/assets", assetCtrl.AddAsset)
	secured.PUT("/v2/assets/:id", assetCtrl.UpdateAsset)
	secured.DELETE("/v2/assets/:id", assetCtrl.DeleteAsset)

	liabilityCtrl := controllers.NewLiabilityController(svc)
	secured.GET("/v2/liabilities", liabilityCtrl.GetLiabilities)
	secured.POST("/v2/liabilities", liabilityCtrl.AddLiability)
	secured.PUT("/v2/liabilities/:id", liabilityCtrl.UpdateLiability)
	secured.DELETE("/v2/liabilities/:id", liabilityCtrl.DeleteLiability)

	netWorthCtrl := controllers.NewNetWorthController(svc)
	// The response cache keys by URL only, so it must never sit on a
	// user-scoped route. The dashboard reconciles the current snapshot
	// on every read anyway.
	secured.GET("/v2/networth", netWorthCtrl.Overview)
	secured.GET("/v2/networth/history", netWorthCtrl.History)

	billCtrl := controllers.NewBillController(svc)
	secured.GET("/v2/bills", billCtrl.GetBills)
	secured.POST("/v2/bills", billCtrl.AddBill)
	secured.PUT("/v2/bills/:id", billCtrl.UpdateBill)
	secured.DELETE("/v2/bills/:id", billCtrl.DeleteBill)

	subscriptionCtrl := controllers.NewSubscriptionController(svc)
	secured.GET("/v2/subscriptions", subscriptionCtrl.GetSubscriptions)
	secured.POST("/v2/subscriptions", subscriptionCtrl.AddSubscription)
	secured.PUT("/v2/subscriptions/:id", subscriptionCtrl.UpdateSubscription)
	secured.DELETE("/v2/subscriptions/:id", subscriptionCtrl.DeleteSubscription)

	debtCtrl := controllers.NewDebtController(svc)
	secured.GET("/v2/debts", debtCtrl.GetDebts)
	secured.POST("/v2/debts", debtCtrl.AddDebt)
	secured.PUT("/v2/debts/:id", debtCtrl.UpdateDebt)
	secured.DELETE("/v2/debts/:id", debtCtrl.DeleteDebt)

	budgetCtrl := controllers.NewBudgetController(svc)
	secured.GET("/v2/budgets", budgetCtrl.GetBudgets)
	secured.POST("/v2/budgets", budgetCtrl.AddBudget)
	secured.PUT("/v2/budgets/:id", budgetCtrl.UpdateBudget)
	secured.DELETE("/v2/budgets/:id", budgetCtrl.DeleteBudget)

	splitExpenseCtrl := controllers.NewSplitExpenseController(svc)
	secured.GET("/v2/splitexpenses", splitExpenseCtrl.GetSplitExpenses)
	secured.POST("/v2/splitexpenses", splitExpenseCtrl.AddSplitExpense)
	secured.DELETE("/v2/splitexpenses/:id", splitExpenseCtrl.DeleteSplitExpense)

	receiptCtrl := controllers.NewReceiptController(svc)
	secured.GET("/v2/receipts", receiptCtrl.GetReceipts)
	secured.POST("/v2/receipts", receiptCtrl.AddReceipt)
	secured.PUT("/v2/receipts/:id", receiptCtrl.UpdateReceipt)
	secured.DELETE("/v2/receipts/:id", receiptCtrl.DeleteReceipt)

	watchlistCtrl := controllers.NewWatchlistController(svc)
	// Quote lookups fan out to the external API, keep them behind the
	// strict limiter.
	securedWithStrictRateLimit.GET("/v2/watchlist", watchlistCtrl.GetWatchlist)
	secured.POST("/v2/watchlist", watchlistCtrl.AddWatchlistItem)
	secured.PUT("/v2/watchlist/:id", watchlistCtrl.UpdateWatchlistItem)
	secured.DELETE("/v2/watchlist/:id", watchlistCtrl.DeleteWatchlistItem)

	reportCtrl := controllers.NewReportController(svc)
	secured.GET("/v2/reports/networth.csv", reportCtrl.NetWorthCSV)
	secured.GET("/v2/reports/entries.csv", reportCtrl.EntriesCSV)

	healthCtrl := controllers.NewHealthController()
	e.GET("/healthz", healthCtrl.Check, CreateCacheClient().Middleware())
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusPermanentRedirect, "/healthz")
	})
}
