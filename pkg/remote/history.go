package remote

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/navsync-dev/navsync/pkg/browser"
	"github.com/navsync-dev/navsync/pkg/protocol"
)

// Conn is the connection subset RemoteHistory needs. *websocket.Conn
// satisfies it; tests substitute an in-memory pipe.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Option configures a RemoteHistory.
type Option func(*RemoteHistory)

// WithLogger sets the history's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *RemoteHistory) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// RemoteHistory is a browser.History proxied over a WebSocket connection.
type RemoteHistory struct {
	conn   Conn
	logger *slog.Logger

	writeMu sync.Mutex

	mu         sync.Mutex
	location   string
	index      int
	listeners  map[int]func()
	listenerID int
}

// Accept performs the handshake on a fresh connection: it reads the
// client's initial load event and seeds the mirror from it.
func Accept(conn Conn, opts ...Option) (*RemoteHistory, error) {
	h := &RemoteHistory{
		conn:      conn,
		logger:    slog.Default(),
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(h)
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read handshake: %w", err)
	}
	ev, err := decodeEventFrame(msg)
	if err != nil {
		return nil, fmt.Errorf("decode handshake: %w", err)
	}
	if ev.Type != protocol.EventLoad {
		return nil, fmt.Errorf("handshake: expected load event, got %s", ev.Type)
	}
	h.location = ev.Location
	h.index = ev.Index
	return h, nil
}

// Location returns the mirrored path plus query.
func (h *RemoteHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.location
}

// Index returns the mirrored entry payload index.
func (h *RemoteHistory) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// PushState sends a push operation and updates the mirror immediately.
func (h *RemoteHistory) PushState(entry browser.Entry, url string) {
	h.mu.Lock()
	h.location = url
	h.index = entry.Index
	h.mu.Unlock()
	h.send(protocol.NewPushOp(entry.Index, url))
}

// ReplaceState sends a replace operation and updates the mirror
// immediately.
func (h *RemoteHistory) ReplaceState(entry browser.Entry, url string) {
	h.mu.Lock()
	h.location = url
	h.index = entry.Index
	h.mu.Unlock()
	h.send(protocol.NewReplaceOp(entry.Index, url))
}

// Go sends a relative move. The mirror is updated when the client reports
// the resulting popstate, since only the client knows where it lands.
func (h *RemoteHistory) Go(delta int) {
	h.send(protocol.NewGoOp(delta))
}

// Listen subscribes fn to popstate events reported by the client.
func (h *RemoteHistory) Listen(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listenerID++
	id := h.listenerID
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// ReadLoop reads client events until the connection closes or errors.
// Listeners are dispatched on this goroutine.
func (h *RemoteHistory) ReadLoop() {
	defer h.conn.Close()

	for {
		_, msg, err := h.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				h.logger.Error("read error", "error", err)
			}
			return
		}

		ev, err := decodeEventFrame(msg)
		if err != nil {
			h.logger.Error("event decode error", "error", err)
			continue
		}

		switch ev.Type {
		case protocol.EventPop:
			h.mu.Lock()
			h.location = ev.Location
			h.index = ev.Index
			fns := make([]func(), 0, len(h.listeners))
			for _, fn := range h.listeners {
				fns = append(fns, fn)
			}
			h.mu.Unlock()
			for _, fn := range fns {
				fn()
			}

		case protocol.EventLoad:
			// A load after the handshake means the client re-initialized.
			h.mu.Lock()
			h.location = ev.Location
			h.index = ev.Index
			h.mu.Unlock()
			h.logger.Debug("client reloaded", "location", ev.Location)
		}
	}
}

// send encodes a single operation frame and writes it to the client.
func (h *RemoteHistory) send(op protocol.HistoryOp) {
	frame := protocol.EncodeHistoryFrame([]protocol.HistoryOp{op})
	h.writeMu.Lock()
	err := h.conn.WriteMessage(websocket.BinaryMessage, frame)
	h.writeMu.Unlock()
	if err != nil {
		h.logger.Error("write error", "op", op.Op, "error", err)
	}
}

// decodeEventFrame decodes a full client frame, enforcing the frame type.
func decodeEventFrame(msg []byte) (protocol.Event, error) {
	ft, d, err := protocol.DecodeFrameType(msg)
	if err != nil {
		return protocol.Event{}, err
	}
	if ft != protocol.FrameEvent {
		return protocol.Event{}, errors.New("unexpected frame type from client")
	}
	return protocol.DecodeEvent(d)
}
