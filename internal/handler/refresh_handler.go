package handler

import (
	"recruai-web/internal/auth"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/service"
	internalWS "recruai-web/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RefreshHandler upgrades dashboard tabs to a WebSocket that announces
// server-side collection changes. Tabs react by re-fetching the whole page.
type RefreshHandler struct {
	hub    *internalWS.Hub
	auth   service.IAuthService
	logger logger.ILogger
}

func NewRefreshHandler(hub *internalWS.Hub, auth service.IAuthService, log logger.ILogger) *RefreshHandler {
	return &RefreshHandler{hub: hub, auth: auth, logger: log}
}

// RegisterRoutes mounts /ws/refresh behind guard.
func (h *RefreshHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	r.Get("/ws/refresh", guard, h.ServeWs)
}

func (h *RefreshHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	p, err := h.auth.Principal(c.UserContext(), auth.SessionID(c), auth.StateFrom(c))
	if err != nil {
		return err
	}
	scope := p.Scope()
	if scope == "" {
		return fiber.NewError(fiber.StatusForbidden, "No refresh scope for this account")
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Debug("RefreshHandler", "websocket session started", map[string]interface{}{"scope": scope})
		internalWS.ServeWs(h.hub, conn, scope)
		h.logger.Debug("RefreshHandler", "websocket session ended", map[string]interface{}{"scope": scope})
	})(c)
}
