package server

import (
	"net/http"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	srv := New(":0", http.NotFoundHandler(), Timeouts{Write: 3 * time.Second})
	if srv.ReadTimeout != 10*time.Second || srv.IdleTimeout != 60*time.Second {
		t.Fatalf("defaults not applied: %v %v", srv.ReadTimeout, srv.IdleTimeout)
	}
	if srv.WriteTimeout != 3*time.Second {
		t.Fatalf("got %v, want 3s", srv.WriteTimeout)
	}
}
