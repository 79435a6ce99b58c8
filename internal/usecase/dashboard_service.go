package usecase

import (
	"botdesk/internal/domain"
	"botdesk/internal/service"
)

// DashboardService aggregates the per-user bot figures and the
// portfolio snapshot into the overview the dashboard screen renders.
type DashboardService struct {
	bots   *service.BotService
	market *service.MarketDataService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(bots *service.BotService, market *service.MarketDataService) *DashboardService {
	return &DashboardService{bots: bots, market: market}
}

// Overview is the aggregated dashboard payload.
type Overview struct {
	TotalBots   int                   `json:"total_bots"`
	ActiveBots  int                   `json:"active_bots"`
	TotalProfit float64               `json:"total_profit"`
	TotalTrades int                   `json:"total_trades"`
	BestBot     *domain.Bot           `json:"best_bot,omitempty"`
	Portfolio   domain.PortfolioStats `json:"portfolio"`
}

// GetOverview computes the overview for a user from in-memory state.
func (s *DashboardService) GetOverview(userID string) Overview {
	bots := s.bots.GetUserBots(userID)

	overview := Overview{
		TotalBots: len(bots),
		Portfolio: s.market.PortfolioStats(),
	}

	for _, bot := range bots {
		if bot.Status == domain.StatusActive {
			overview.ActiveBots++
		}
		overview.TotalProfit += bot.Profit
		overview.TotalTrades += bot.Trades

		if overview.BestBot == nil || bot.Profit > overview.BestBot.Profit {
			overview.BestBot = bot
		}
	}

	return overview
}
