package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/hvrSSB04/ssb-backend/internal/config"
	"github.com/hvrSSB04/ssb-backend/internal/notify"
	"github.com/hvrSSB04/ssb-backend/internal/token"
)

// WSHandler owns the notification socket. A client connects, sends one
// join frame and then only listens; published events arrive as
// {event, data} frames until the connection drops.
type WSHandler struct {
	hub    *notify.Hub
	config *config.Config
}

func NewWSHandler(hub *notify.Hub, cfg *config.Config) *WSHandler {
	return &WSHandler{hub: hub, config: cfg}
}

type joinRequest struct {
	Type  string `json:"type"`
	Token string `json:"token"`
	// Email and Name are advisory; the channel key always comes from the
	// verified token claims.
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (h *WSHandler) Handle(c *gin.Context) {
	websocket.Handler(h.serve).ServeHTTP(c.Writer, c.Request)
}

func (h *WSHandler) serve(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	decoder := json.NewDecoder(conn)
	peer := notify.NewPeer(json.NewEncoder(conn))

	var joined []string
	defer func() {
		// disconnect silently drops membership, no explicit leave exists
		for _, channel := range joined {
			h.hub.Leave(channel, peer)
		}
	}()

	for {
		var req joinRequest
		if err := decoder.Decode(&req); err != nil {
			return
		}

		channel, err := h.resolveChannel(req)
		if err != nil {
			_ = peer.WriteFrame(notify.Frame{
				Event: "error",
				Data:  gin.H{"message": err.Error()},
			})
			continue
		}

		h.hub.Join(channel, peer)
		joined = append(joined, channel)

		_ = peer.WriteFrame(notify.Frame{
			Event: "joined",
			Data:  gin.H{"channel": channel},
		})

		zap.L().Debug("client joined channel", zap.String("channel", channel))
	}
}

// resolveChannel derives the channel key from the join token. Clients
// cannot subscribe to an identity they do not hold a token for.
func (h *WSHandler) resolveChannel(req joinRequest) (string, error) {
	claims, err := token.Parse(h.config.JWTSecret, req.Token)
	if err != nil {
		return "", errors.New("invalid or missing join token")
	}
	if claims.Kind != req.Type {
		return "", errors.New("token does not match join type")
	}

	switch claims.Kind {
	case token.KindUser:
		if req.Email != "" && req.Email != claims.Subject {
			return "", errors.New("email does not match join token")
		}
		return notify.UserChannel(claims.Subject), nil

	case token.KindBarber:
		if req.Name != "" && req.Name != claims.Name {
			return "", errors.New("name does not match join token")
		}
		return notify.BarberChannel(claims.Name), nil

	default:
		return "", errors.New("unknown join type")
	}
}
