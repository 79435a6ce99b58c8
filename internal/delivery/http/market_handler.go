package http

import (
	"github.com/labstack/echo/v4"

	"botdesk/internal/middleware"
	"botdesk/internal/service"
	"botdesk/internal/usecase"
)

// MarketHandler serves the mock portfolio, trade history and dashboard
// screens.
type MarketHandler struct {
	market    *service.MarketDataService
	dashboard *usecase.DashboardService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(market *service.MarketDataService, dashboard *usecase.DashboardService) *MarketHandler {
	return &MarketHandler{market: market, dashboard: dashboard}
}

// GetPortfolio returns the portfolio summary and holdings
// GET /api/portfolio
func (h *MarketHandler) GetPortfolio(c echo.Context) error {
	return SuccessResponse(c, map[string]interface{}{
		"stats":    h.market.PortfolioStats(),
		"holdings": h.market.Holdings(),
	})
}

// GetTransactions returns the portfolio transaction history
// GET /api/portfolio/transactions
func (h *MarketHandler) GetTransactions(c echo.Context) error {
	return SuccessResponse(c, h.market.Transactions())
}

// GetTrades returns the bot trade history, filtered by the optional
// "status" and "q" query parameters
// GET /api/trades
func (h *MarketHandler) GetTrades(c echo.Context) error {
	trades := h.market.Trades(c.QueryParam("status"), c.QueryParam("q"))
	return SuccessResponse(c, trades)
}

// GetDashboard returns the aggregated overview for the authenticated user
// GET /api/dashboard
func (h *MarketHandler) GetDashboard(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}
	return SuccessResponse(c, h.dashboard.GetOverview(userID))
}
