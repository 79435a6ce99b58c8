package domain

// Bot represents a configured (but not executing) trading strategy instance.
// Every bot belongs to exactly one user; the ID is immutable after creation.
type Bot struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Pair                   string   `json:"pair"`
	Type                   string   `json:"type"`
	Profit                 float64  `json:"profit"`
	ProfitPercent          float64  `json:"profit_percent"`
	Status                 string   `json:"status"`
	Trades                 int      `json:"trades"`
	Created                string   `json:"created"` // calendar date, YYYY-MM-DD
	BaseOrderSize          float64  `json:"base_order_size"`
	SafetyOrderSize        float64  `json:"safety_order_size"`
	MaxSafetyTrades        int      `json:"max_safety_trades"`
	TakeProfit             float64  `json:"take_profit"`
	StopLoss               *float64 `json:"stop_loss,omitempty"`
	PriceDeviation         *float64 `json:"price_deviation,omitempty"`
	SafetyOrderStepScale   *float64 `json:"safety_order_step_scale,omitempty"`
	SafetyOrderVolumeScale *float64 `json:"safety_order_volume_scale,omitempty"`
	UserID                 string   `json:"user_id"`
}

// Strategy kind constants
const (
	StrategyDCA   = "DCA"
	StrategyGrid  = "Grid"
	StrategyLong  = "Long"
	StrategyShort = "Short"
)

// Bot status constants.
// StatusError is only ever present in seed data; no registry operation
// produces it, and ToggleBotStatus leaves it untouched.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusError    = "error"
)

// ValidStrategy reports whether kind is one of the known strategy kinds.
func ValidStrategy(kind string) bool {
	switch kind {
	case StrategyDCA, StrategyGrid, StrategyLong, StrategyShort:
		return true
	}
	return false
}

// BotConfig is the raw creation form as supplied by a client. Numeric
// fields arrive as free-form strings; parsing with fallbacks happens in
// the registry so downstream display logic always sees numbers.
type BotConfig struct {
	Name                   string `json:"name"`
	Type                   string `json:"type"`
	Pair                   string `json:"pair"`
	BaseOrderSize          string `json:"base_order_size"`
	SafetyOrderSize        string `json:"safety_order_size"`
	MaxSafetyTrades        string `json:"max_safety_trades"`
	PriceDeviation         string `json:"price_deviation"`
	SafetyOrderStepScale   string `json:"safety_order_step_scale"`
	SafetyOrderVolumeScale string `json:"safety_order_volume_scale"`
	TakeProfit             string `json:"take_profit"`
	StopLoss               string `json:"stop_loss"`
}

// BotUpdate carries a partial-field merge for an existing bot.
// Nil fields are left untouched. The bot ID and owner never change.
type BotUpdate struct {
	Name                   *string  `json:"name,omitempty"`
	Pair                   *string  `json:"pair,omitempty"`
	Type                   *string  `json:"type,omitempty"`
	Status                 *string  `json:"status,omitempty"`
	Profit                 *float64 `json:"profit,omitempty"`
	ProfitPercent          *float64 `json:"profit_percent,omitempty"`
	Trades                 *int     `json:"trades,omitempty"`
	BaseOrderSize          *float64 `json:"base_order_size,omitempty"`
	SafetyOrderSize        *float64 `json:"safety_order_size,omitempty"`
	MaxSafetyTrades        *int     `json:"max_safety_trades,omitempty"`
	TakeProfit             *float64 `json:"take_profit,omitempty"`
	StopLoss               *float64 `json:"stop_loss,omitempty"`
	PriceDeviation         *float64 `json:"price_deviation,omitempty"`
	SafetyOrderStepScale   *float64 `json:"safety_order_step_scale,omitempty"`
	SafetyOrderVolumeScale *float64 `json:"safety_order_volume_scale,omitempty"`
}

// Apply merges the non-nil fields of the update into the bot.
func (u *BotUpdate) Apply(bot *Bot) {
	if u.Name != nil {
		bot.Name = *u.Name
	}
	if u.Pair != nil {
		bot.Pair = *u.Pair
	}
	if u.Type != nil {
		bot.Type = *u.Type
	}
	if u.Status != nil {
		bot.Status = *u.Status
	}
	if u.Profit != nil {
		bot.Profit = *u.Profit
	}
	if u.ProfitPercent != nil {
		bot.ProfitPercent = *u.ProfitPercent
	}
	if u.Trades != nil {
		bot.Trades = *u.Trades
	}
	if u.BaseOrderSize != nil {
		bot.BaseOrderSize = *u.BaseOrderSize
	}
	if u.SafetyOrderSize != nil {
		bot.SafetyOrderSize = *u.SafetyOrderSize
	}
	if u.MaxSafetyTrades != nil {
		bot.MaxSafetyTrades = *u.MaxSafetyTrades
	}
	if u.TakeProfit != nil {
		bot.TakeProfit = *u.TakeProfit
	}
	if u.StopLoss != nil {
		bot.StopLoss = u.StopLoss
	}
	if u.PriceDeviation != nil {
		bot.PriceDeviation = u.PriceDeviation
	}
	if u.SafetyOrderStepScale != nil {
		bot.SafetyOrderStepScale = u.SafetyOrderStepScale
	}
	if u.SafetyOrderVolumeScale != nil {
		bot.SafetyOrderVolumeScale = u.SafetyOrderVolumeScale
	}
}
