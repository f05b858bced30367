package handler

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/events"
)

const writeTimeout = 5 * time.Second

// StreamHandler upgrades GET /v1/stream to a WebSocket and bridges the hub
// to the connection. Every connection receives broadcasts; to receive
// private notifications the client must explicitly join the room named
// after its own user id:
//
//	{"action": "join", "room": "<user id>"}
//
// The server never binds a connection to an identity on its own.
type StreamHandler struct {
	hub     *events.Hub
	origins []string
	log     zerolog.Logger
}

func NewStreamHandler(hub *events.Hub, origins []string, log zerolog.Logger) *StreamHandler {
	return &StreamHandler{hub: hub, origins: origins, log: log}
}

type streamCommand struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

// Serve handles the WebSocket session: a read pump consumes join/leave
// commands while the main loop drains the client's mailbox onto the wire.
//
// @Summary      Live event stream
// @Tags         events
// @Router       /v1/stream [get]
func (h *StreamHandler) Serve(c echo.Context) error {
	opts := &websocket.AcceptOptions{}
	if len(h.origins) > 0 {
		opts.OriginPatterns = h.origins
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		// Accept has already written the handshake failure.
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	client := h.hub.Register(0)
	defer h.hub.Unregister(client)

	readErr := make(chan error, 1)
	go h.readPump(ctx, conn, client, readErr)

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return nil
		case <-readErr:
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return nil
		case evt, ok := <-client.Events():
			if !ok {
				_ = conn.Close(websocket.StatusNormalClosure, "closed")
				return nil
			}
			writeCtx, cancelWrite := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, evt)
			cancelWrite()
			if err != nil {
				_ = conn.Close(websocket.StatusNormalClosure, "write_failed")
				return nil
			}
		}
	}
}

func (h *StreamHandler) readPump(ctx context.Context, conn *websocket.Conn, client *events.Client, readErr chan<- error) {
	for {
		var cmd streamCommand
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			readErr <- err
			return
		}
		switch cmd.Action {
		case "join":
			h.hub.Join(client, cmd.Room)
		case "leave":
			h.hub.Leave(client, cmd.Room)
		default:
			h.log.Debug().Str("action", cmd.Action).Msg("unknown stream command ignored")
		}
	}
}
