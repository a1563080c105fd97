package devserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/runtime"
)

// Options configures the preview server.
type Options struct {
	// Addr is the listen address (default ":8420").
	Addr string

	// Title is the page title.
	Title string

	// Producer builds the app tree. Each page request mounts it
	// against a fresh document and serves the rendered markup.
	Producer runtime.Producer

	// Verbose enables request logging.
	Verbose bool
}

// Server previews a Lucent app over HTTP. Every page load mounts the
// producer server-side and ships the resulting markup; a WebSocket
// channel tells connected browsers to reload when Rerender is called.
type Server struct {
	opts       Options
	reload     *ReloadServer
	httpServer *http.Server
}

// NewServer creates a preview server.
func NewServer(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8420"
	}
	if opts.Title == "" {
		opts.Title = "Lucent Preview"
	}
	s := &Server{
		opts:   opts,
		reload: NewReloadServer(),
	}

	r := chi.NewRouter()
	if opts.Verbose {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.reload.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start serves until the context is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Rerender tells connected browsers to reload.
func (s *Server) Rerender() {
	s.reload.NotifyReload()
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleIndex mounts the producer against a fresh document and serves
// the rendered markup inside a page shell.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := dom.NewDocument()
	app := doc.CreateElement("div")
	app.SetAttribute("id", "app")
	doc.Body().AppendChild(app)

	ctx := runtime.NewContext(doc)
	defer ctx.Dispose()

	var mountErr error
	dispose, err := ctx.Mount(s.opts.Producer, "#app",
		runtime.WithMountErrorHandler(func(e error) { mountErr = e }))
	if err != nil {
		s.reload.NotifyError(err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer dispose()

	if mountErr != nil {
		s.reload.NotifyError(mountErr.Error())
		http.Error(w, mountErr.Error(), http.StatusInternalServerError)
		return
	}
	s.reload.ClearError()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, s.opts.Title, app.OuterHTML())
}

// pageShell wraps the rendered app with the live-reload client.
const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
<script>
(function() {
  var proto = location.protocol === "https:" ? "wss" : "ws";
  var ws = new WebSocket(proto + "://" + location.host + "/ws");
  ws.onmessage = function(ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "reload") location.reload();
    if (msg.type === "error") console.error("lucent:", msg.error);
  };
})();
</script>
</body>
</html>
`
