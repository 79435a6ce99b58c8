package service

import (
	"context"

	"botdesk/internal/domain"
)

func ptr(v float64) *float64 { return &v }

// demoBots builds the starter bots shown to a fresh account. The SOL
// bot is the one place the error status appears; nothing else in the
// registry can reach it.
func demoBots(userID string) []*domain.Bot {
	return []*domain.Bot{
		{
			ID:              newBotID(),
			Name:            "BTC Long Bot",
			Pair:            "BTC/USDT",
			Type:            domain.StrategyLong,
			Profit:          234.56,
			ProfitPercent:   5.67,
			Status:          domain.StatusActive,
			Trades:          23,
			Created:         "2024-01-15",
			BaseOrderSize:   100,
			SafetyOrderSize: 200,
			MaxSafetyTrades: 5,
			TakeProfit:      2.5,
			StopLoss:        ptr(5.0),
			UserID:          userID,
		},
		{
			ID:                     newBotID(),
			Name:                   "ETH DCA Bot",
			Pair:                   "ETH/USDT",
			Type:                   domain.StrategyDCA,
			Profit:                 -45.23,
			ProfitPercent:          -2.34,
			Status:                 domain.StatusActive,
			Trades:                 12,
			Created:                "2024-01-10",
			BaseOrderSize:          50,
			SafetyOrderSize:        100,
			MaxSafetyTrades:        7,
			TakeProfit:             1.5,
			PriceDeviation:         ptr(2.5),
			SafetyOrderStepScale:   ptr(1.05),
			SafetyOrderVolumeScale: ptr(1.05),
			UserID:                 userID,
		},
		{
			ID:              newBotID(),
			Name:            "ADA Grid Bot",
			Pair:            "ADA/USDT",
			Type:            domain.StrategyGrid,
			Profit:          123.45,
			ProfitPercent:   8.91,
			Status:          domain.StatusInactive,
			Trades:          45,
			Created:         "2024-01-05",
			BaseOrderSize:   25,
			SafetyOrderSize: 50,
			MaxSafetyTrades: 10,
			TakeProfit:      3.0,
			PriceDeviation:  ptr(1.0),
			UserID:          userID,
		},
		{
			ID:              newBotID(),
			Name:            "SOL Short Bot",
			Pair:            "SOL/USDT",
			Type:            domain.StrategyShort,
			Profit:          67.89,
			ProfitPercent:   3.45,
			Status:          domain.StatusError,
			Trades:          8,
			Created:         "2024-01-20",
			BaseOrderSize:   75,
			SafetyOrderSize: 150,
			MaxSafetyTrades: 3,
			TakeProfit:      2.0,
			StopLoss:        ptr(5.0),
			UserID:          userID,
		},
	}
}

// SeedDemoBots populates the registry with starter bots for a new user.
// It only runs against an empty collection so it never clobbers real
// records.
func (s *BotService) SeedDemoBots(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bots) > 0 {
		return nil
	}

	s.bots = demoBots(userID)
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("seeded demo bots", "count", len(s.bots), "user_id", userID)
	return nil
}
