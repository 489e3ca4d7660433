package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/navsync-dev/navsync/pkg/histsync"
	"github.com/navsync-dev/navsync/pkg/linking"
	"github.com/navsync-dev/navsync/pkg/navstate"
	"github.com/navsync-dev/navsync/pkg/remote"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a demo server driving a real browser over WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func runServe(addr string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	metrics := histsync.NewMetrics(prometheus.DefaultRegisterer)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		serveSession(conn, logger, metrics)
	})
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(demoPage))
	})

	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}

// serveSession wires one browser connection: remote history, a fresh
// navigation store, and a synchronizer between them. Everything runs on
// the connection's read goroutine.
func serveSession(conn *websocket.Conn, logger *slog.Logger, metrics *histsync.Metrics) {
	history, err := remote.Accept(conn, remote.WithLogger(logger))
	if err != nil {
		logger.Error("handshake failed", "error", err)
		conn.Close()
		return
	}

	store := navstate.NewStore(&navstate.NavigationState{
		Routes: []navstate.Route{{Name: "home"}},
	})
	store.SetLogger(logger)

	sync := histsync.New(history,
		histsync.WithContainer(store),
		histsync.WithOptions(linking.Options{}),
		histsync.WithLogger(logger),
		histsync.WithMetrics(metrics),
	)
	if initial := sync.GetInitialState(); initial != nil {
		store.ResetRoot(initial)
	}
	sync.Start()
	defer sync.Stop()

	logger.Info("session started", "location", history.Location())
	history.ReadLoop()
	logger.Info("session closed")
}

// demoPage is a minimal thin client: it reports the initial location,
// forwards popstate events, and applies history operations from the server.
const demoPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>navsync demo</title></head>
<body>
<h1>navsync demo</h1>
<p>Use the browser back/forward buttons or follow a link; the server log
shows the synchronizer at work.</p>
<p><a href="/home">/home</a> · <a href="/home/settings">/home/settings</a> ·
<a href="/article?id=42">/article?id=42</a></p>
<script>
(() => {
  const te = new TextEncoder(), td = new TextDecoder();
  const wUv = (a, v) => { while (v >= 0x80) { a.push((v & 0x7f) | 0x80); v >>>= 7; } a.push(v); };
  const wSv = (a, v) => wUv(a, ((v << 1) ^ (v >> 31)) >>> 0);
  const wStr = (a, s) => { const b = te.encode(s); wUv(a, b.length); b.forEach(x => a.push(x)); };
  const rUv = (v, p) => { let r = 0, sh = 0; for (;;) { const b = v[p.i++]; r |= (b & 0x7f) << sh; if (b < 0x80) return r >>> 0; sh += 7; } };
  const rSv = (v, p) => { const u = rUv(v, p); return (u >>> 1) ^ -(u & 1); };
  const rStr = (v, p) => { const n = rUv(v, p); const s = td.decode(v.slice(p.i, p.i + n)); p.i += n; return s; };

  const loc = () => location.pathname + location.search;
  const idx = () => (history.state && history.state.index) || 0;
  const eventFrame = (type) => { const a = [0x02, type]; wSv(a, idx()); wStr(a, loc()); return new Uint8Array(a); };

  const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
  ws.binaryType = 'arraybuffer';
  ws.onopen = () => ws.send(eventFrame(0x02));
  window.addEventListener('popstate', () => {
    if (ws.readyState === WebSocket.OPEN) ws.send(eventFrame(0x01));
  });
  ws.onmessage = (m) => {
    const v = new Uint8Array(m.data), p = { i: 0 };
    if (v[p.i++] !== 0x01) return;
    const count = rUv(v, p);
    for (let k = 0; k < count; k++) {
      const op = v[p.i++];
      if (op === 0x01) { const index = rSv(v, p); history.pushState({ index }, '', rStr(v, p)); }
      else if (op === 0x02) { const index = rSv(v, p); history.replaceState({ index }, '', rStr(v, p)); }
      else if (op === 0x03) { history.go(rSv(v, p)); }
    }
  };
})();
</script>
</body>
</html>
`
