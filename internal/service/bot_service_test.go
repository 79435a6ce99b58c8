package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botdesk/internal/domain"
	"botdesk/internal/utils"
)

func newTestBotService(store domain.KVStore) *BotService {
	return NewBotService(store, testLogger())
}

func TestBotService_CreateBot(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a bot from a raw config", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())

		bot, err := svc.CreateBot(ctx, domain.BotConfig{
			Name:          "BTC Bot",
			Type:          domain.StrategyDCA,
			Pair:          "BTC/USDT",
			BaseOrderSize: "100",
			TakeProfit:    "2.5",
		}, "u1")
		require.NoError(t, err)

		assert.Equal(t, "BTC Bot", bot.Name)
		assert.Equal(t, "BTC/USDT", bot.Pair)
		assert.Equal(t, domain.StrategyDCA, bot.Type)
		assert.Equal(t, domain.StatusInactive, bot.Status)
		assert.Equal(t, 0.0, bot.Profit)
		assert.Equal(t, 0, bot.Trades)
		assert.Equal(t, 100.0, bot.BaseOrderSize)
		assert.Equal(t, 2.5, bot.TakeProfit)
		assert.Nil(t, bot.StopLoss)
		assert.Equal(t, utils.Today(), bot.Created)
		assert.Equal(t, "u1", bot.UserID)
		assert.Contains(t, bot.ID, "bot_")
	})

	t.Run("unparseable numeric fields fall back to zero", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())

		bot, err := svc.CreateBot(ctx, domain.BotConfig{
			Name:            "Odd Bot",
			Type:            domain.StrategyGrid,
			Pair:            "ETH/USDT",
			BaseOrderSize:   "lots",
			SafetyOrderSize: "",
			MaxSafetyTrades: "many",
			TakeProfit:      "",
			StopLoss:        "n/a",
			PriceDeviation:  "1.5",
		}, "u1")
		require.NoError(t, err)

		assert.Equal(t, 0.0, bot.BaseOrderSize)
		assert.Equal(t, 0.0, bot.SafetyOrderSize)
		assert.Equal(t, 0, bot.MaxSafetyTrades)
		assert.Equal(t, 0.0, bot.TakeProfit)
		assert.Nil(t, bot.StopLoss)
		require.NotNil(t, bot.PriceDeviation)
		assert.Equal(t, 1.5, *bot.PriceDeviation)
	})

	t.Run("assigns distinct identifiers", func(t *testing.T) {
		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			id := newBotID()
			require.False(t, seen[id], "duplicate id %s", id)
			assert.True(t, strings.HasPrefix(id, "bot_"))
			seen[id] = true
		}
	})

	t.Run("returns persistence failures", func(t *testing.T) {
		store := newMockKVStore()
		store.SetFunc = func(ctx context.Context, key, value string) error {
			return errors.New("disk full")
		}
		svc := newTestBotService(store)

		bot, err := svc.CreateBot(ctx, domain.BotConfig{Name: "Bot", Pair: "BTC/USDT", Type: domain.StrategyDCA}, "u1")
		require.Error(t, err)
		assert.Nil(t, bot)
	})
}

func TestBotService_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("created bots survive a refresh", func(t *testing.T) {
		store := newMockKVStore()
		svc := newTestBotService(store)

		created, err := svc.CreateBot(ctx, domain.BotConfig{
			Name:           "ETH Bot",
			Type:           domain.StrategyDCA,
			Pair:           "ETH/USDT",
			BaseOrderSize:  "50",
			PriceDeviation: "2.5",
		}, "u1")
		require.NoError(t, err)

		reloaded := newTestBotService(store)
		reloaded.Load(ctx)

		bot, err := reloaded.GetBotByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Name, bot.Name)
		assert.Equal(t, created.BaseOrderSize, bot.BaseOrderSize)
		require.NotNil(t, bot.PriceDeviation)
		assert.Equal(t, 2.5, *bot.PriceDeviation)
	})

	t.Run("missing collection loads as empty", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		svc.Load(ctx)
		assert.Equal(t, 0, svc.Count())
	})

	t.Run("corrupt collection loads as empty", func(t *testing.T) {
		store := newMockKVStore()
		store.data["botdesk:bots"] = "[{broken"

		svc := newTestBotService(store)
		svc.Load(ctx)
		assert.Equal(t, 0, svc.Count())
	})

	t.Run("read failure loads as empty", func(t *testing.T) {
		store := newMockKVStore()
		store.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "", errors.New("storage offline")
		}

		svc := newTestBotService(store)
		svc.Load(ctx)
		assert.Equal(t, 0, svc.Count())
	})
}

func TestBotService_UpdateBot(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only the provided fields", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		created, err := svc.CreateBot(ctx, domain.BotConfig{
			Name:          "Old Name",
			Type:          domain.StrategyDCA,
			Pair:          "BTC/USDT",
			BaseOrderSize: "100",
		}, "u1")
		require.NoError(t, err)

		name := "New Name"
		require.NoError(t, svc.UpdateBot(ctx, created.ID, domain.BotUpdate{Name: &name}))

		bot, err := svc.GetBotByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", bot.Name)
		assert.Equal(t, "BTC/USDT", bot.Pair)
		assert.Equal(t, 100.0, bot.BaseOrderSize)
	})

	t.Run("unknown identifier returns ErrBotNotFound", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		name := "ghost"
		err := svc.UpdateBot(ctx, "bot_missing", domain.BotUpdate{Name: &name})
		assert.ErrorIs(t, err, domain.ErrBotNotFound)
	})
}

func TestBotService_DeleteBot(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the bot", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		created, err := svc.CreateBot(ctx, domain.BotConfig{Name: "Bot", Pair: "BTC/USDT", Type: domain.StrategyDCA}, "u1")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteBot(ctx, created.ID))

		_, err = svc.GetBotByID(created.ID)
		assert.ErrorIs(t, err, domain.ErrBotNotFound)
	})

	t.Run("unknown identifier is a silent no-op", func(t *testing.T) {
		store := newMockKVStore()
		svc := newTestBotService(store)
		_, err := svc.CreateBot(ctx, domain.BotConfig{Name: "Bot", Pair: "BTC/USDT", Type: domain.StrategyDCA}, "u1")
		require.NoError(t, err)

		writes := 0
		store.SetFunc = func(ctx context.Context, key, value string) error {
			writes++
			return nil
		}

		require.NoError(t, svc.DeleteBot(ctx, "bot_missing"))
		assert.Equal(t, 1, svc.Count())
		assert.Equal(t, 0, writes)
	})
}

func TestBotService_ToggleBotStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("flips between inactive and active", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		created, err := svc.CreateBot(ctx, domain.BotConfig{Name: "Bot", Pair: "BTC/USDT", Type: domain.StrategyDCA}, "u1")
		require.NoError(t, err)

		require.NoError(t, svc.ToggleBotStatus(ctx, created.ID))
		bot, err := svc.GetBotByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, bot.Status)

		require.NoError(t, svc.ToggleBotStatus(ctx, created.ID))
		bot, err = svc.GetBotByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInactive, bot.Status)
	})

	t.Run("leaves a bot in error status untouched", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		require.NoError(t, svc.SeedDemoBots(ctx, "u1"))

		var errored *domain.Bot
		for _, bot := range svc.GetUserBots("u1") {
			if bot.Status == domain.StatusError {
				errored = bot
				break
			}
		}
		require.NotNil(t, errored)

		require.NoError(t, svc.ToggleBotStatus(ctx, errored.ID))

		bot, err := svc.GetBotByID(errored.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusError, bot.Status)
	})

	t.Run("unknown identifier returns ErrBotNotFound", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		err := svc.ToggleBotStatus(ctx, "bot_missing")
		assert.ErrorIs(t, err, domain.ErrBotNotFound)
	})
}

func TestBotService_GetUserBots(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes to the owning user in creation order", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())

		first, err := svc.CreateBot(ctx, domain.BotConfig{Name: "First", Pair: "BTC/USDT", Type: domain.StrategyDCA}, "u1")
		require.NoError(t, err)
		_, err = svc.CreateBot(ctx, domain.BotConfig{Name: "Other", Pair: "ETH/USDT", Type: domain.StrategyGrid}, "u2")
		require.NoError(t, err)
		second, err := svc.CreateBot(ctx, domain.BotConfig{Name: "Second", Pair: "ADA/USDT", Type: domain.StrategyLong}, "u1")
		require.NoError(t, err)

		bots := svc.GetUserBots("u1")
		require.Len(t, bots, 2)
		assert.Equal(t, first.ID, bots[0].ID)
		assert.Equal(t, second.ID, bots[1].ID)

		assert.Empty(t, svc.GetUserBots("u3"))
	})

	t.Run("returns copies, not internal pointers", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		created, err := svc.CreateBot(ctx, domain.BotConfig{Name: "Bot", Pair: "BTC/USDT", Type: domain.StrategyDCA}, "u1")
		require.NoError(t, err)

		bots := svc.GetUserBots("u1")
		require.Len(t, bots, 1)
		bots[0].Name = "mutated"

		bot, err := svc.GetBotByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bot", bot.Name)
	})
}

func TestBotService_SeedDemoBots(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the starter bots for an empty registry", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		require.NoError(t, svc.SeedDemoBots(ctx, "u1"))

		bots := svc.GetUserBots("u1")
		require.Len(t, bots, 4)

		statuses := make(map[string]int)
		for _, bot := range bots {
			statuses[bot.Status]++
		}
		assert.Equal(t, 2, statuses[domain.StatusActive])
		assert.Equal(t, 1, statuses[domain.StatusInactive])
		assert.Equal(t, 1, statuses[domain.StatusError])
	})

	t.Run("never clobbers an existing collection", func(t *testing.T) {
		svc := newTestBotService(newMockKVStore())
		_, err := svc.CreateBot(ctx, domain.BotConfig{Name: "Mine", Pair: "BTC/USDT", Type: domain.StrategyDCA}, "u1")
		require.NoError(t, err)

		require.NoError(t, svc.SeedDemoBots(ctx, "u1"))
		assert.Equal(t, 1, svc.Count())
	})
}
