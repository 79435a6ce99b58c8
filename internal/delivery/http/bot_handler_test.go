package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botdesk/internal/domain"
	"botdesk/internal/repository"
	"botdesk/internal/service"
)

func newTestBotHandler() *BotHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewBotHandler(service.NewBotService(repository.NewMemoryKV(), logger))
}

func botRequest(t *testing.T, e *echo.Echo, method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestBotHandler_List(t *testing.T) {
	e := echo.New()

	t.Run("empty registry returns an empty array", func(t *testing.T) {
		handler := newTestBotHandler()
		c, rec := botRequest(t, e, http.MethodGet, "/api/bots", "", "u1")

		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Status string            `json:"status"`
			Data   []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		assert.Empty(t, body.Data)
	})

	t.Run("missing user context returns 401", func(t *testing.T) {
		handler := newTestBotHandler()
		c, rec := botRequest(t, e, http.MethodGet, "/api/bots", "", "")

		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBotHandler_Create(t *testing.T) {
	e := echo.New()

	t.Run("creates a bot and returns 201", func(t *testing.T) {
		handler := newTestBotHandler()
		c, rec := botRequest(t, e, http.MethodPost, "/api/bots",
			`{"name":"BTC Bot","type":"DCA","pair":"BTC/USDT","base_order_size":"100","take_profit":"2.5"}`, "u1")

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Data domain.Bot `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "BTC Bot", body.Data.Name)
		assert.Equal(t, domain.StatusInactive, body.Data.Status)
		assert.Equal(t, 100.0, body.Data.BaseOrderSize)
	})

	t.Run("unknown strategy returns 400", func(t *testing.T) {
		handler := newTestBotHandler()
		c, rec := botRequest(t, e, http.MethodPost, "/api/bots",
			`{"name":"Bot","type":"Scalp","pair":"BTC/USDT"}`, "u1")

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBotHandler_Toggle(t *testing.T) {
	e := echo.New()

	t.Run("unknown bot returns 404", func(t *testing.T) {
		handler := newTestBotHandler()
		c, rec := botRequest(t, e, http.MethodPost, "/api/bots/bot_missing/toggle", "", "u1")
		c.SetParamNames("id")
		c.SetParamValues("bot_missing")

		require.NoError(t, handler.Toggle(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBotHandler_Delete(t *testing.T) {
	e := echo.New()

	t.Run("unknown bot is a silent success", func(t *testing.T) {
		handler := newTestBotHandler()
		c, rec := botRequest(t, e, http.MethodDelete, "/api/bots/bot_missing", "", "u1")
		c.SetParamNames("id")
		c.SetParamValues("bot_missing")

		require.NoError(t, handler.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
