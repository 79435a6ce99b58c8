package dto

import "botdesk/internal/domain"

// CreateBotRequest mirrors the bot creation form: numeric fields arrive
// as free-form strings and are parsed by the registry.
type CreateBotRequest struct {
	Name                   string `json:"name" validate:"required"`
	Type                   string `json:"type" validate:"required"`
	Pair                   string `json:"pair" validate:"required"`
	BaseOrderSize          string `json:"base_order_size"`
	SafetyOrderSize        string `json:"safety_order_size"`
	MaxSafetyTrades        string `json:"max_safety_trades"`
	PriceDeviation         string `json:"price_deviation"`
	SafetyOrderStepScale   string `json:"safety_order_step_scale"`
	SafetyOrderVolumeScale string `json:"safety_order_volume_scale"`
	TakeProfit             string `json:"take_profit"`
	StopLoss               string `json:"stop_loss"`
}

// ToConfig converts the request into a domain bot config.
func (r *CreateBotRequest) ToConfig() domain.BotConfig {
	return domain.BotConfig{
		Name:                   r.Name,
		Type:                   r.Type,
		Pair:                   r.Pair,
		BaseOrderSize:          r.BaseOrderSize,
		SafetyOrderSize:        r.SafetyOrderSize,
		MaxSafetyTrades:        r.MaxSafetyTrades,
		PriceDeviation:         r.PriceDeviation,
		SafetyOrderStepScale:   r.SafetyOrderStepScale,
		SafetyOrderVolumeScale: r.SafetyOrderVolumeScale,
		TakeProfit:             r.TakeProfit,
		StopLoss:               r.StopLoss,
	}
}

// UpdateBotRequest represents a partial bot update
type UpdateBotRequest struct {
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

// ToDomain converts the request into a domain update.
func (r *UpdateBotRequest) ToDomain() domain.BotUpdate {
	return domain.BotUpdate{
		Name:                   r.Name,
		Pair:                   r.Pair,
		Type:                   r.Type,
		Status:                 r.Status,
		Profit:                 r.Profit,
		ProfitPercent:          r.ProfitPercent,
		Trades:                 r.Trades,
		BaseOrderSize:          r.BaseOrderSize,
		SafetyOrderSize:        r.SafetyOrderSize,
		MaxSafetyTrades:        r.MaxSafetyTrades,
		TakeProfit:             r.TakeProfit,
		StopLoss:               r.StopLoss,
		PriceDeviation:         r.PriceDeviation,
		SafetyOrderStepScale:   r.SafetyOrderStepScale,
		SafetyOrderVolumeScale: r.SafetyOrderVolumeScale,
	}
}
