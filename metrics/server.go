package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Router serves /metrics and /healthz
func (m *Metrics) Router() *mux.Router {
	r := mux.NewRouter()
	r.Path("/metrics").Methods(http.MethodGet).Handler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	r.Path("/healthz").Methods(http.MethodGet).HandlerFunc(healthz)
	return r
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// Server is the exporter's HTTP listener
type Server struct {
	srv  *http.Server
	ln   net.Listener
	log  *zap.SugaredLogger
	done chan struct{}
}

// Serve binds addr immediately, so a bad address fails at startup, then
// serves in its own goroutine
func Serve(addr string, m *Metrics, log *zap.SugaredLogger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", addr, err)
	}

	s := &Server{
		srv: &http.Server{
			Handler:           m.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:   ln,
		log:  log,
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorw("metrics server stopped", "error", err)
		}
	}()
	s.log.Infow("serving metrics", "addr", ln.Addr().String())
	return s, nil
}

// Addr is the bound address, useful when addr asked for port 0
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops accepting and waits for in-flight scrapes
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	<-s.done
	return err
}
