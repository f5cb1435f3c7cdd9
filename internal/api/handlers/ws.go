package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"tradehall/internal/api/middleware"
	"tradehall/internal/api/ws"
)

const wsReadTimeout = 90 * time.Second

type WebSocketHandler struct {
	hub      *ws.Hub
	jwtKey   []byte
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *ws.Hub, jwtKey string, log *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		jwtKey: []byte(jwtKey),
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection godoc
// @Summary Store updates stream
// @Description Websocket that pushes store_update messages to store owners. Browsers cannot set headers, so the JWT goes in the token query parameter.
// @Tags ws
// @Param token query string true "JWT"
// @Failure 401 {object} map[string]string
// @Router /api/ws [get]
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	characterID, err := middleware.ParseToken(c.QueryParam("token"), h.jwtKey)
	if err != nil {
		return ErrUnauthorized(c)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", "user_id", characterID, "error", err)
		return nil
	}

	h.hub.Register(characterID, conn)
	defer h.hub.Unregister(characterID, conn)

	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	// Clients only listen; reading drives pong handling and close detection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
