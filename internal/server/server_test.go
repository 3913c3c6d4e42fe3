package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/raphael0002/graphics-garage-api/internal/config"
)

func TestShutdown_StopsAcceptingConnections(t *testing.T) {
	srv := New()
	cfg := config.ServerConfig{
		Port:           "18317",
		Handler:        http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(cfg)
	}()

	var err error
	for i := 0; i < 50; i++ {
		var conn net.Conn
		conn, err = net.DialTimeout("tcp", "127.0.0.1:18317", 100*time.Millisecond)
		if err == nil {
			conn.Close()
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never started listening: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != http.ErrServerClosed {
			t.Errorf("Run returned %v, want http.ErrServerClosed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}

	if conn, err := net.DialTimeout("tcp", "127.0.0.1:18317", 100*time.Millisecond); err == nil {
		conn.Close()
		t.Error("listener still accepting connections after shutdown")
	}
}

func TestShutdown_BeforeRun(t *testing.T) {
	if err := New().Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown before Run: %v", err)
	}
}
