package domain

// Holding represents a portfolio position shown on the portfolio screen.
// All figures are locally generated display data.
type Holding struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Value      float64 `json:"value"`
	Price      float64 `json:"price"`
	Change24h  float64 `json:"change_24h"`
	Allocation float64 `json:"allocation"`
}

// PortfolioStats summarizes the mock portfolio.
type PortfolioStats struct {
	TotalValue       float64 `json:"total_value"`
	TotalPnL         float64 `json:"total_pnl"`
	TotalPnLPercent  float64 `json:"total_pnl_percent"`
	DayChange        float64 `json:"day_change"`
	DayChangePercent float64 `json:"day_change_percent"`
}

// Transaction is a portfolio buy/sell record.
type Transaction struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"` // "buy" or "sell"
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
	Total  float64 `json:"total"`
	Date   string  `json:"date"`
}

// Trade is a single bot trade shown in the trade history.
type Trade struct {
	ID            string   `json:"id"`
	BotName       string   `json:"bot_name"`
	Pair          string   `json:"pair"`
	Type          string   `json:"type"` // "buy" or "sell"
	Amount        float64  `json:"amount"`
	Price         float64  `json:"price"`
	Total         float64  `json:"total"`
	Profit        *float64 `json:"profit,omitempty"`
	ProfitPercent *float64 `json:"profit_percent,omitempty"`
	Status        string   `json:"status"`
	Date          string   `json:"date"`
}

// Trade status constants
const (
	TradeCompleted = "completed"
	TradePending   = "pending"
	TradeCancelled = "cancelled"
)
