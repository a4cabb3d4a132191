package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/internal/engine"
	"github.com/Mizzalini/roguelike/internal/infrastructure/storage"
	"github.com/Mizzalini/roguelike/pkg/api"
	"github.com/Mizzalini/roguelike/pkg/logger"
	"github.com/Mizzalini/roguelike/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client — посредник между WebSocket и движком. Каждое подключение
// владеет собственной сессией: мир одиночный, общего состояния нет.
type Client struct {
	ID      string
	Server  *Server
	Conn    *websocket.Conn
	Send    chan *api.ServerResponse
	Game    *engine.Engine
	replays *storage.ReplayService
}

func NewClient(s *Server, conn *websocket.Conn) *Client {
	return &Client{
		ID:      utils.GenerateID(),
		Server:  s,
		Conn:    conn,
		Send:    make(chan *api.ServerResponse, 64),
		replays: s.Replays,
	}
}

// readPump читает команды клиента и прогоняет их через секвенсор.
// Движок трогает только эта горутина, поэтому ходы не требуют блокировок.
func (c *Client) readPump() {
	defer func() {
		c.finishSession()
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			return
		}
		c.handleCommand(cmd)
	}
}

func (c *Client) handleCommand(cmd api.ClientCommand) {
	// INIT создает сессию; остальные команды требуют ее наличия.
	if cmd.Action == "INIT" {
		c.startSession(cmd.Payload)
		return
	}
	if c.Game == nil {
		logger.Log.WithField("action", cmd.Action).Warn("Command before INIT, ignoring.")
		return
	}
	if c.Game.Status.Terminal() {
		return
	}

	var intent domain.Action
	switch cmd.Action {
	case "MOVE":
		var dir api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &dir); err != nil {
			logger.Log.WithError(err).Warn("Malformed MOVE payload.")
			return
		}
		if err := dir.Validate(); err != nil {
			logger.Log.WithError(err).Warn("Rejected MOVE payload.")
			return
		}
		// Жест движения всегда приходит как "толчок": во что он
		// развернется — шаг или удар — решает ядро в момент исполнения.
		intent = c.Game.PlayerIntent(domain.ActionBump, dir.Dx, dir.Dy)
	case "WAIT":
		intent = c.Game.PlayerIntent(domain.ActionWait, 0, 0)
	case "ESCAPE":
		intent = c.Game.PlayerIntent(domain.ActionEscape, 0, 0)
	default:
		logger.Log.WithField("action", cmd.Action).Warn("Unknown client action.")
		return
	}

	c.Game.HandleAction(intent)
	c.Send <- c.Game.BuildState("UPDATE")
}

func (c *Client) startSession(payload json.RawMessage) {
	if c.Game != nil {
		// Повторный INIT просто пересылает полный снимок.
		c.Send <- c.Game.BuildState("INIT")
		return
	}

	params := c.Server.Params
	if len(payload) > 0 {
		var init api.InitPayload
		if err := json.Unmarshal(payload, &init); err == nil {
			switch {
			case init.Seed != 0:
				params.Seed = init.Seed
			case init.Name != "":
				// Сид зависит только от имени: одно имя — один мир,
				// и в Live-режиме, и при повторном заходе
				params.Seed = utils.StringToSeed(init.Name)
			}
		}
	}
	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}

	c.Game = engine.NewEngine(params)
	c.Server.Sessions.Register(c.ID, c.Game)

	logger.Log.WithFields(logrus.Fields{
		"session": c.ID,
		"seed":    params.Seed,
	}).Info("Session started")

	c.Send <- c.Game.BuildState("INIT")
}

// finishSession снимает сессию с учета и, если включена запись,
// сбрасывает ленту намерений на диск.
func (c *Client) finishSession() {
	if c.Game == nil {
		return
	}
	c.Server.Sessions.Unregister(c.ID)

	if c.replays != nil && len(c.Game.Replay.Actions) > 0 {
		path, err := c.replays.Save(c.Game.Replay)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to save replay.")
		} else {
			logger.Log.WithFields(logrus.Fields{
				"session": c.ID,
				"path":    path,
			}).Info("Replay saved")
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"session": c.ID,
		"turns":   c.Game.Turn,
		"status":  c.Game.Status.String(),
	}).Info("Session finished")
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
