package server

import (
	"context"
	"fmt"
	"log/slog"

	"sangha/internal/featureflags"
	"sangha/internal/middleware"
	"sangha/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// wsContextKey carries the request context, with its request and trace IDs, into the socket handler.
const wsContextKey = "wsContext"

// WebsocketHandler upgrades GET /api/ws/notifications and streams the caller's
// notification events until either side hangs up.
func (s *Server) WebsocketHandler() fiber.Handler {
	upgrade := websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userID").(uint)
		if !ok || userID == 0 {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}

		ctx, ok := conn.Locals(wsContextKey).(context.Context)
		if !ok {
			ctx = context.Background()
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			middleware.Logger.WarnContext(ctx, "websocket register failed",
				slog.Uint64("user_id", uint64(userID)), slog.String("error", err.Error()))
			_ = conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf(`{"error":%q}`, err.Error())))
			_ = conn.Close()
			return
		}

		client.Run()
	})

	return func(c *fiber.Ctx) error {
		if s.hub == nil {
			return models.RespondWithError(c, fiber.StatusServiceUnavailable,
				&models.AppError{Code: models.CodeInternal, Message: "Realtime notifications are unavailable"})
		}
		if !s.featureFlags.Enabled(featureflags.RealtimeNotifications, currentUserID(c)) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Feature", featureflags.RealtimeNotifications))
		}
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		c.Locals(wsContextKey, c.UserContext())
		return upgrade(c)
	}
}
