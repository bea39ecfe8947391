package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/go-address-selector/internal/adapters/http"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func waitReady(t *testing.T, s *adapthttp.Server) {
	t.Helper()
	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("server did not become ready")
	}
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_AddrBeforeStart(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 9090}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	s := adapthttp.NewServer(cfg, handler, discardLogger())

	// Start returns nil on graceful shutdown, so we collect the error in a channel.
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()
	waitReady(t, s)

	if _, port, _ := net.SplitHostPort(s.Addr()); port == "0" {
		t.Fatalf("Addr() = %q, want the bound port", s.Addr())
	}

	resp, err := http.Get("http://" + s.Addr() + "/")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want %q", body, "ok")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_ShutdownDefaultTimeout(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()
	waitReady(t, s)

	// Pass a context without a deadline -- should use the default 10s timeout.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_StartFailsWhenAddressInUse(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), discardLogger())
	if err := s.Start(); err == nil {
		t.Fatal("Start() error = nil, want address in use")
	}
}
