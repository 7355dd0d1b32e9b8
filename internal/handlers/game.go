package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vancomm/mines-engine/internal/command"
	"github.com/vancomm/mines-engine/internal/config"
	"github.com/vancomm/mines-engine/internal/mines"
	"github.com/vancomm/mines-engine/internal/store"
)

const maxScriptBytes = 1 << 20

type GameHandler struct {
	logger *slog.Logger
	games  *store.Store[*session]
	limits config.Limits
	ws     *config.WebSocket
	seeds  *seedSource
}

func NewGameHandler(
	logger *slog.Logger,
	limits config.Limits,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	handler := &GameHandler{
		logger: logger,
		games:  store.New[*session](limits.MaxGames),
		limits: limits,
		ws:     ws,
		seeds:  &seedSource{rnd: rnd},
	}

	return handler
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, seeded, err := ParseGameParams(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if !g.limits.AllowsBoard(params.Width, params.Height) {
		err := fmt.Errorf(
			"board %dx%d exceeds the %dx%d limit",
			params.Width, params.Height, g.limits.MaxWidth, g.limits.MaxHeight,
		)
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if !seeded {
		params.Seed = g.seeds.next()
	}

	view, err := mines.NewGame(params)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s := &session{
		id:     uuid.NewString(),
		params: params,
		view:   view,
	}
	if err := g.games.Set(s.id, s); err != nil {
		if errors.Is(err, store.ErrFull) {
			sendErrorOrLog(w, g.logger, http.StatusServiceUnavailable, err)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to store game", slog.Any("error", err))
		return
	}

	g.logger.Debug(
		"created game",
		slog.String("id", s.id),
		slog.String("descriptor", params.Descriptor()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, g.logger, s.dto())
}

// lookup resolves the {id} path value, answering 404 itself when there is
// no such game.
func (g *GameHandler) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	s, err := g.games.Get(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, fmt.Errorf("game not found"))
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch game", slog.Any("error", err))
		return nil, false
	}
	return s, true
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, s.dto())
}

func (g *GameHandler) Render(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, s.render()); err != nil {
		g.logger.Error("unable to send render", slog.Any("error", err))
	}
}

func (g *GameHandler) move(verb command.Verb) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := g.lookup(w, r)
		if !ok {
			return
		}
		pos, err := ParsePosition(r.URL.Query())
		if err != nil {
			sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
			return
		}
		dto, _ := s.run([]command.Command{{Verb: verb, X: pos.X, Y: pos.Y}})
		sendJSONOrLog(w, g.logger, dto)
	}
}

func (g *GameHandler) Open(w http.ResponseWriter, r *http.Request) {
	g.move(command.Open)(w, r)
}

func (g *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	g.move(command.Flag)(w, r)
}

func (g *GameHandler) Chord(w http.ResponseWriter, r *http.Request) {
	g.move(command.Chord)(w, r)
}

// Batch applies a newline separated script from the request body. A script
// that fails to parse is rejected as a whole.
func (g *GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxScriptBytes))
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusRequestEntityTooLarge, err)
		return
	}
	cmds, err := command.Script(string(body))
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	dto, applied := s.run(cmds)
	g.logger.Debug(
		"applied script",
		slog.String("id", dto.GameID),
		slog.Int("commands", len(cmds)),
		slog.Int("applied", applied),
	)
	sendJSONOrLog(w, g.logger, dto)
}

func (g *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	g.games.Delete(s.id)
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	c.SetReadLimit(g.ws.ReadLimit)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		g.logger.Debug(fmt.Sprintf("\t> %s", text))

		var reply any
		cmds, err := command.Script(text)
		if err != nil {
			reply = wrapError(err)
		} else {
			reply, _ = s.run(cmds)
		}

		if err := c.WriteJSON(reply); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
		g.logger.Debug("\t< <session data>")
	}
}
