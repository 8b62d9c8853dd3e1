package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"fortio.org/log"
	"golang.org/x/net/netutil"
)

// Config holds the listener settings.
type Config struct {
	// Addr is the TCP address to listen on, e.g. ":8000".
	Addr string

	// MaxConns caps concurrently open connections. Zero means no cap.
	MaxConns int

	// ShutdownTimeout bounds how long in-flight requests may run after ctx
	// is cancelled.
	ShutdownTimeout time.Duration
}

// ListenAndServe serves the API until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func ListenAndServe(ctx context.Context, cfg Config) error {
	h, err := New()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof("colorpeek listening on %s (max %d connections)", ln.Addr(), cfg.MaxConns)
	return serve(ctx, srv, ln, cfg.ShutdownTimeout)
}

// serve runs srv on ln and shuts it down when ctx is cancelled. If Serve
// fails on its own, the shutdown goroutine is released before returning.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	stopped := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			done <- nil
			return
		}
		sctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		done <- srv.Shutdown(sctx)
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		close(stopped)
		<-done
		return fmt.Errorf("serve: %w", err)
	}

	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
