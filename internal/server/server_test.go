package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		port string
		want string
	}{
		{port: "8080", want: ":8080"},
		{port: ":8080", want: ":8080"},
		{port: "", want: ""},
	}

	for _, tc := range cases {
		if got := normalizeAddr(tc.port); got != tc.want {
			t.Errorf("normalizeAddr(%q): want %q, got %q", tc.port, tc.want, got)
		}
	}
}

// A graceful Shutdown makes Run return ErrServerClosed, which callers must
// treat as a clean exit rather than a startup failure.
func TestRun_ReturnsErrServerClosedAfterShutdown(t *testing.T) {
	t.Parallel()

	srv := &Server{}
	runErr := make(chan error, 1)
	go func() {
		runErr <- srv.Run("0", http.NewServeMux()) // ":0" binds an ephemeral port
	}()

	// Shutdown is a no-op until Run has installed the server, so keep
	// retrying until Run returns.
	deadline := time.After(5 * time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err := srv.Shutdown(ctx)
		cancel()
		if err != nil {
			t.Fatalf("Shutdown: %v", err)
		}

		select {
		case err := <-runErr:
			if !errors.Is(err, http.ErrServerClosed) {
				t.Fatalf("Run: want ErrServerClosed, got %v", err)
			}
			return
		case <-deadline:
			t.Fatal("Run did not return after Shutdown")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestShutdown_NilServer(t *testing.T) {
	t.Parallel()

	srv := &Server{}
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on never-started server: %v", err)
	}
}
