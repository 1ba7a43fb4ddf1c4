package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"sort"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/session"
	"github.com/peterkuimelis/kaiju/internal/view"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Cost  string `json:"cost,omitempty"`
	Image string `json:"image,omitempty"`
}

// GameInfo is returned when a game is created or fetched over HTTP.
type GameInfo struct {
	ID    string          `json:"id"`
	State *view.StateView `json:"state"`
}

// Server is the kaiju web UI server.
type Server struct {
	defs     *game.Definitions
	opts     session.Options
	sessions *session.Manager
	log      *zap.Logger
	mux      *http.ServeMux

	tick time.Duration
}

// NewServer creates a web server that starts games from defs.
func NewServer(defs *game.Definitions, opts session.Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		defs:     defs,
		opts:     opts,
		sessions: session.NewManager(),
		log:      logger,
		mux:      http.NewServeMux(),
		tick:     time.Second / 60,
	}
	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("POST /api/games", s.handleNewGame)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	cards := make([]CardInfo, 0, len(s.defs.Cards))
	for name, c := range s.defs.Cards {
		cv := view.CardToView(0, c)
		cards = append(cards, CardInfo{Name: name, Text: cv.Text, Cost: cv.Cost, Image: c.Image})
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession(r.Context())
	if err != nil {
		s.log.Error("start game", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, GameInfo{ID: sess.ID.String(), State: sess.State()})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, GameInfo{ID: sess.ID.String(), State: sess.State()})
}

// newSession starts and registers a game, waiting until it is playable.
func (s *Server) newSession(ctx context.Context) (*session.Session, error) {
	sess := session.Start(s.defs, s.opts)
	if err := sess.WaitReady(ctx, s.tick); err != nil {
		return nil, err
	}
	s.sessions.Add(sess)
	s.log.Info("game started", zap.String("game_id", sess.ID.String()))
	return sess, nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.log.Warn("websocket accept", zap.Error(err))
		return
	}
	defer wsConn.CloseNow()
	ctx := r.Context()

	// Games this socket started are dropped when it goes away; joined ones stay.
	var sess *session.Session
	id := r.URL.Query().Get("game")
	owned := id == ""
	if owned {
		sess, err = s.newSession(ctx)
	} else {
		sess, err = s.sessions.Get(id)
	}
	if err != nil {
		s.send(ctx, wsConn, view.ServerMessage{Type: "error", Error: err.Error()})
		wsConn.Close(websocket.StatusPolicyViolation, "no game")
		return
	}
	defer func() {
		if owned {
			s.sessions.Remove(sess.ID)
		}
	}()
	log := s.log.With(zap.String("game_id", sess.ID.String()))
	log.Info("client connected")

	if err := s.sendUpdate(ctx, wsConn, sess); err != nil {
		return
	}
	for {
		_, data, err := wsConn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && !errors.Is(err, context.Canceled) {
				log.Debug("websocket read", zap.Error(err))
			}
			return
		}

		var msg view.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.send(ctx, wsConn, view.ServerMessage{Type: "error", Error: "bad message: " + err.Error()})
			continue
		}

		next, err := s.handleClient(ctx, sess, msg)
		if err != nil {
			log.Debug("client action rejected", zap.String("type", msg.Type), zap.Error(err))
			s.send(ctx, wsConn, view.ServerMessage{Type: "error", Error: err.Error()})
		}
		if next != sess {
			if owned {
				s.sessions.Remove(sess.ID)
			}
			sess, owned = next, true
			log = s.log.With(zap.String("game_id", sess.ID.String()))
		}
		if err := s.sendUpdate(ctx, wsConn, sess); err != nil {
			log.Debug("websocket write", zap.Error(err))
			return
		}
	}
}

// handleClient applies one client message. It returns the session to use
// from now on, which only changes on "new_game".
func (s *Server) handleClient(ctx context.Context, sess *session.Session, msg view.ClientMessage) (*session.Session, error) {
	switch msg.Type {
	case "click":
		zone, err := game.ParseZone(msg.Zone)
		if err != nil {
			return sess, err
		}
		if sv := sess.State(); sv.Mode == "target" && zone == game.ZoneNone {
			return sess, sess.Target(ctx, zone, 0)
		}
		return sess, sess.Click(ctx, zone, msg.Index)
	case "end_turn":
		return sess, sess.EndTurn(ctx)
	case "key":
		return sess, sess.Key(ctx, game.Key(msg.Key))
	case "new_game":
		next, err := s.newSession(ctx)
		if err != nil {
			return sess, err
		}
		return next, nil
	case "state":
		return sess, nil
	}
	return sess, errors.New("unknown message type " + msg.Type)
}

// sendUpdate pushes new log entries then the current snapshot.
func (s *Server) sendUpdate(ctx context.Context, c *websocket.Conn, sess *session.Session) error {
	if events := sess.Drain(); len(events) > 0 {
		if err := s.send(ctx, c, view.ServerMessage{Type: "events", Events: view.EventsToView(events)}); err != nil {
			return err
		}
	}
	msg := view.ServerMessage{Type: "state", State: sess.State()}
	if loser, result, ok := sess.Result(); ok {
		msg.Type = "game_over"
		msg.Loser = loser
		msg.Result = result
	}
	return s.send(ctx, c, msg)
}

func (s *Server) send(ctx context.Context, c *websocket.Conn, msg view.ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageText, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
