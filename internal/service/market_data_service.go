package service

import (
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"botdesk/internal/domain"
)

// MarketDataService serves the locally generated portfolio and trade
// history shown by the UI. Nothing here touches an exchange; the
// snapshot is a fixture that RefreshSnapshot perturbs so the screens
// look alive.
type MarketDataService struct {
	logger *slog.Logger

	mu           sync.RWMutex
	stats        domain.PortfolioStats
	holdings     []domain.Holding
	transactions []domain.Transaction
	trades       []domain.Trade
}

// NewMarketDataService creates the service with its base snapshot.
func NewMarketDataService(logger *slog.Logger) *MarketDataService {
	s := &MarketDataService{logger: logger}
	s.seed()
	return s
}

func (s *MarketDataService) seed() {
	s.stats = domain.PortfolioStats{
		TotalValue:       12543.67,
		TotalPnL:         1234.56,
		TotalPnLPercent:  10.92,
		DayChange:        234.12,
		DayChangePercent: 1.87,
	}

	s.holdings = []domain.Holding{
		{Symbol: "BTC", Name: "Bitcoin", Amount: 0.5234, Value: 6543.21, Price: 43250.00, Change24h: 2.34, Allocation: 52.1},
		{Symbol: "ETH", Name: "Ethereum", Amount: 2.1567, Value: 3456.78, Price: 2650.00, Change24h: -1.23, Allocation: 27.6},
		{Symbol: "ADA", Name: "Cardano", Amount: 1234.56, Value: 1543.68, Price: 0.45, Change24h: 5.67, Allocation: 12.3},
		{Symbol: "SOL", Name: "Solana", Amount: 12.34, Value: 1000.00, Price: 98.50, Change24h: -3.45, Allocation: 8.0},
	}

	s.transactions = []domain.Transaction{
		{ID: "1", Type: "buy", Symbol: "BTC", Amount: 0.1, Price: 42000.00, Total: 4200.00, Date: "2024-01-15 14:30"},
		{ID: "2", Type: "sell", Symbol: "ETH", Amount: 0.5, Price: 2700.00, Total: 1350.00, Date: "2024-01-14 09:15"},
		{ID: "3", Type: "buy", Symbol: "ADA", Amount: 500, Price: 0.44, Total: 220.00, Date: "2024-01-13 16:45"},
	}

	s.trades = []domain.Trade{
		{ID: "1", BotName: "BTC Long Bot", Pair: "BTC/USDT", Type: "buy", Amount: 0.1, Price: 42000.00, Total: 4200.00, Status: domain.TradeCompleted, Date: "2024-01-15 14:30:25"},
		{ID: "2", BotName: "BTC Long Bot", Pair: "BTC/USDT", Type: "sell", Amount: 0.1, Price: 43500.00, Total: 4350.00, Profit: ptr(150.00), ProfitPercent: ptr(3.57), Status: domain.TradeCompleted, Date: "2024-01-15 16:45:12"},
		{ID: "3", BotName: "ETH DCA Bot", Pair: "ETH/USDT", Type: "buy", Amount: 1.5, Price: 2650.00, Total: 3975.00, Status: domain.TradePending, Date: "2024-01-15 17:20:08"},
		{ID: "4", BotName: "ADA Grid Bot", Pair: "ADA/USDT", Type: "sell", Amount: 1000, Price: 0.46, Total: 460.00, Profit: ptr(20.00), ProfitPercent: ptr(4.55), Status: domain.TradeCompleted, Date: "2024-01-14 11:15:33"},
		{ID: "5", BotName: "SOL Short Bot", Pair: "SOL/USDT", Type: "sell", Amount: 5, Price: 98.50, Total: 492.50, Status: domain.TradeCancelled, Date: "2024-01-14 09:30:45"},
	}
}

// PortfolioStats returns the current portfolio summary.
func (s *MarketDataService) PortfolioStats() domain.PortfolioStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Holdings returns the current holdings.
func (s *MarketDataService) Holdings() []domain.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	holdings := make([]domain.Holding, len(s.holdings))
	copy(holdings, s.holdings)
	return holdings
}

// Transactions returns the portfolio transaction history.
func (s *MarketDataService) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]domain.Transaction, len(s.transactions))
	copy(txs, s.transactions)
	return txs
}

// Trades returns the bot trade history, optionally filtered by status
// and by a case-insensitive search over bot name and pair.
func (s *MarketDataService) Trades(status, query string) []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var trades []domain.Trade
	for _, trade := range s.trades {
		if status != "" && status != "all" && trade.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(trade.BotName), query) &&
			!strings.Contains(strings.ToLower(trade.Pair), query) {
			continue
		}
		trades = append(trades, trade)
	}
	return trades
}

// RefreshSnapshot perturbs the 24h figures so repeated reads do not
// return a frozen picture. Invoked by the scheduler.
func (s *MarketDataService) RefreshSnapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.holdings {
		// Drift within ±0.5 percentage points.
		s.holdings[i].Change24h += rand.Float64() - 0.5
	}

	s.stats.DayChange = s.stats.TotalValue * s.stats.DayChangePercent / 100
	s.stats.DayChangePercent += (rand.Float64() - 0.5) * 0.2

	s.logger.Debug("market snapshot refreshed")
}
