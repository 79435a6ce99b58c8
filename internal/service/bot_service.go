package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"botdesk/internal/domain"
	"botdesk/internal/utils"
)

// storageKeyBots is the single key holding the serialized bot
// collection. The registry is its sole writer.
const storageKeyBots = "botdesk:bots"

// BotService owns the set of bot records, scoped by owning user. All
// mutations persist the full collection; there are no delta writes.
type BotService struct {
	store  domain.KVStore
	logger *slog.Logger

	mu   sync.RWMutex
	bots []*domain.Bot
}

// NewBotService creates a new BotService with an empty registry.
// Call Load before serving requests.
func NewBotService(store domain.KVStore, logger *slog.Logger) *BotService {
	return &BotService{store: store, logger: logger}
}

// Load reads the persisted collection into memory. Missing or corrupt
// data degrades to an empty list; losing the bot list must not block
// the rest of the application.
func (s *BotService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, storageKeyBots)
	if errors.Is(err, domain.ErrKeyNotFound) {
		s.logger.Info("no stored bots found")
		s.bots = nil
		return
	}
	if err != nil {
		s.logger.Warn("failed to load bots, starting empty", "error", err)
		s.bots = nil
		return
	}

	var bots []*domain.Bot
	if err := json.Unmarshal([]byte(raw), &bots); err != nil {
		s.logger.Warn("stored bots are corrupt, starting empty", "error", err)
		s.bots = nil
		return
	}

	s.bots = bots
	s.logger.Info("loaded bots", "count", len(bots))
}

// Refresh discards the in-memory state in favor of persisted state.
// Used to recover from external changes to storage.
func (s *BotService) Refresh(ctx context.Context) {
	s.Load(ctx)
}

// CreateBot parses the raw config, assigns a fresh identifier and
// appends the bot to the collection. New bots start inactive with zero
// profit and trade counters. A persistence failure is returned to the
// caller; the in-memory append is kept either way.
func (s *BotService) CreateBot(ctx context.Context, cfg domain.BotConfig, userID string) (*domain.Bot, error) {
	bot := &domain.Bot{
		ID:                     newBotID(),
		Name:                   cfg.Name,
		Pair:                   cfg.Pair,
		Type:                   cfg.Type,
		Profit:                 0,
		ProfitPercent:          0,
		Status:                 domain.StatusInactive,
		Trades:                 0,
		Created:                utils.Today(),
		BaseOrderSize:          parseAmount(cfg.BaseOrderSize),
		SafetyOrderSize:        parseAmount(cfg.SafetyOrderSize),
		MaxSafetyTrades:        parseCount(cfg.MaxSafetyTrades),
		TakeProfit:             parseAmount(cfg.TakeProfit),
		StopLoss:               parseOptional(cfg.StopLoss),
		PriceDeviation:         parseOptional(cfg.PriceDeviation),
		SafetyOrderStepScale:   parseOptional(cfg.SafetyOrderStepScale),
		SafetyOrderVolumeScale: parseOptional(cfg.SafetyOrderVolumeScale),
		UserID:                 userID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bots = append(s.bots, bot)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("bot created", "id", bot.ID, "name", bot.Name, "user_id", userID)

	created := *bot
	return &created, nil
}

// UpdateBot merges the given fields into the matching bot and persists
// the collection. Returns ErrBotNotFound for an unknown identifier.
func (s *BotService) UpdateBot(ctx context.Context, botID string, update domain.BotUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bot := s.find(botID)
	if bot == nil {
		return domain.ErrBotNotFound
	}

	update.Apply(bot)
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("bot updated", "id", botID)
	return nil
}

// DeleteBot removes the matching bot. An unknown identifier is a
// silent no-op.
func (s *BotService) DeleteBot(ctx context.Context, botID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bots[:0]
	removed := false
	for _, bot := range s.bots {
		if bot.ID == botID {
			removed = true
			continue
		}
		kept = append(kept, bot)
	}
	if !removed {
		return nil
	}
	s.bots = kept

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("bot deleted", "id", botID)
	return nil
}

// GetBotByID returns a copy of the bot, or ErrBotNotFound. Pure
// in-memory lookup, no persistence I/O.
func (s *BotService) GetBotByID(botID string) (*domain.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bot := s.find(botID)
	if bot == nil {
		return nil, domain.ErrBotNotFound
	}

	found := *bot
	return &found, nil
}

// GetUserBots returns copies of all bots owned by userID, in collection
// order.
func (s *BotService) GetUserBots(userID string) []*domain.Bot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bots []*domain.Bot
	for _, bot := range s.bots {
		if bot.UserID == userID {
			owned := *bot
			bots = append(bots, &owned)
		}
	}
	return bots
}

// ToggleBotStatus flips a bot between active and inactive. A bot in the
// error status is left untouched; no registry operation produces or
// consumes that status. Returns ErrBotNotFound for an unknown
// identifier.
func (s *BotService) ToggleBotStatus(ctx context.Context, botID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bot := s.find(botID)
	if bot == nil {
		return domain.ErrBotNotFound
	}

	switch bot.Status {
	case domain.StatusActive:
		bot.Status = domain.StatusInactive
	case domain.StatusInactive:
		bot.Status = domain.StatusActive
	default:
		s.logger.Warn("toggle ignored for bot in error status", "id", botID)
		return nil
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("bot status toggled", "id", botID, "status", bot.Status)
	return nil
}

// Count returns the number of bots across all users.
func (s *BotService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bots)
}

// find returns the bot with the given ID. Caller must hold the lock.
func (s *BotService) find(botID string) *domain.Bot {
	for _, bot := range s.bots {
		if bot.ID == botID {
			return bot
		}
	}
	return nil
}

// persist writes the full collection. Caller must hold the lock.
func (s *BotService) persist(ctx context.Context) error {
	data, err := json.Marshal(s.bots)
	if err != nil {
		return fmt.Errorf("failed to marshal bots: %w", err)
	}
	if err := s.store.Set(ctx, storageKeyBots, string(data)); err != nil {
		return fmt.Errorf("failed to persist bots: %w", err)
	}
	return nil
}

// newBotID generates a unique bot identifier.
func newBotID() string {
	return "bot_" + uuid.NewString()
}

// parseAmount converts a free-form numeric field. Unparseable or empty
// input falls back to zero; downstream display logic assumes the field
// is always present.
func parseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// parseCount converts a free-form integer field, falling back to zero.
func parseCount(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}

// parseOptional converts an optional numeric field. Empty or
// unparseable input yields "unset".
func parseOptional(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
