package showroom

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/showroom/ui"
	"github.com/eringen/showroom/views"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
	liveReadLimit  = 4 << 10
	liveBacklog    = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// liveMessage is the outgoing WebSocket message format.
type liveMessage struct {
	Type    string       `json:"type"` // "hello", "snapshot" or "error"
	Session string       `json:"session,omitempty"`
	State   *ui.Snapshot `json:"state,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// liveSessions tracks open sessions so shutdown can end them; hijacked
// connections are invisible to the HTTP server.
type liveSessions struct {
	mu     sync.Mutex
	stops  map[string]func()
	closed bool
}

func newLiveSessions() *liveSessions {
	return &liveSessions{stops: make(map[string]func())}
}

func (l *liveSessions) add(id string, stop func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.stops[id] = stop
	return true
}

func (l *liveSessions) remove(id string) {
	l.mu.Lock()
	delete(l.stops, id)
	l.mu.Unlock()
}

func (l *liveSessions) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.stops)
}

func (l *liveSessions) closeAll() {
	l.mu.Lock()
	l.closed = true
	stops := make([]func(), 0, len(l.stops))
	for _, stop := range l.stops {
		stops = append(stops, stop)
	}
	l.mu.Unlock()
	for _, stop := range stops {
		stop()
	}
}

// liveRoute normalizes the ?route= of a live session to a site path.
func liveRoute(r string) string {
	r = strings.TrimSpace(r)
	if !strings.HasPrefix(r, "/") || strings.HasPrefix(r, "//") {
		return views.Landing
	}
	if i := strings.IndexAny(r, "?#"); i >= 0 {
		r = r[:i]
	}
	return r
}

// handleLive runs a page runtime for one browser tab: the gate, nav and
// hero slider controllers on their own event loop, with every state change
// pushed to the browser and every browser event posted into the loop.
func (a *App) handleLive(c echo.Context) error {
	route := liveRoute(c.QueryParam("route"))
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already answered the request.
		a.Logger.Debug("live upgrade failed", zap.Error(err))
		return nil
	}
	defer conn.Close()

	id := uuid.NewString()
	log := a.Logger.With(zap.String("session", id), zap.String("route", route))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if !a.live.add(id, func() { cancel(); conn.Close() }) {
		return nil
	}
	defer a.live.remove(id)
	log.Info("live session opened")

	out := make(chan liveMessage, liveBacklog)
	send := func(m liveMessage) {
		select {
		case out <- m:
		case <-ctx.Done():
		}
	}

	loop := ui.NewLoop()
	var page *ui.Page
	loop.Post(func() {
		page = ui.NewPage(loop, ui.PageOptions{
			Route:   route,
			Landing: views.Landing,
			Slides:  len(a.Brand.Slides),
			Timing:  a.Config.Timing,
		}, func(s ui.Snapshot) {
			send(liveMessage{Type: "snapshot", State: &s})
		})
		s := page.Snapshot()
		send(liveMessage{Type: "hello", Session: id, State: &s})
	})

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		loop.Run(ctx)
		// Nothing runs on the loop any more, so the page can be torn down here.
		if page != nil {
			page.Dispose()
		}
	}()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if err := writeLive(ctx, conn, out); err != nil {
			log.Debug("live write failed", zap.Error(err))
		}
		cancel()
		conn.Close()
	}()

	readLive(ctx, conn, loop, log, func(ev ui.Event) {
		if page == nil {
			return
		}
		if err := page.Handle(ev); err != nil {
			send(liveMessage{Type: "error", Error: err.Error()})
		}
	}, send)

	cancel()
	<-loopDone
	<-writerDone
	log.Info("live session closed")
	return nil
}

func readLive(ctx context.Context, conn *websocket.Conn, loop *ui.Loop, log *zap.Logger, handle func(ui.Event), send func(liveMessage)) {
	conn.SetReadLimit(liveReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("live read failed", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(livePongWait))

		var ev ui.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			send(liveMessage{Type: "error", Error: "invalid message format"})
			continue
		}
		if !loop.Post(func() { handle(ev) }) {
			return
		}
	}
}

// writeLive is the connection's only writer. It returns nil when ctx ends.
func writeLive(ctx context.Context, conn *websocket.Conn, out <-chan liveMessage) error {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(liveWriteWait))
			return nil
		case m := <-out:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteJSON(m); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return err
			}
		}
	}
}
