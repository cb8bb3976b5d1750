package rpc

import (
	"testing"
	"time"
)

func TestPeerHost(t *testing.T) {
	tests := []struct{ in, want string }{
		{"127.0.0.1:54321", "127.0.0.1"},
		{"[::1]:8080", "::1"},
		{"bufconn", "bufconn"},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		if got := PeerHost(tt.in); got != tt.want {
			t.Fatalf("PeerHost(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPeerRateLimiterSharesBucketAcrossPorts(t *testing.T) {
	l := NewPeerRateLimiter(0, 1)
	if !l.Limiter("10.0.0.1:40000").Allow() {
		t.Fatalf("first request should pass")
	}
	if l.Limiter("10.0.0.1:40001").Allow() {
		t.Fatalf("reconnect from a new port must reuse the exhausted bucket")
	}
	if !l.Limiter("10.0.0.2:40000").Allow() {
		t.Fatalf("a different host gets its own bucket")
	}
	if n := len(l.peers); n != 2 {
		t.Fatalf("tracked peers = %d, want 2", n)
	}
}

func TestPeerRateLimiterEvictsAtCap(t *testing.T) {
	now := time.Unix(0, 0)
	l := NewPeerRateLimiter(0, 1)
	l.maxPeers = 2
	l.idle = time.Minute
	l.now = func() time.Time { return now }

	l.Limiter("10.0.0.1:1")
	now = now.Add(time.Second)
	l.Limiter("10.0.0.2:1")
	now = now.Add(time.Second)
	l.Limiter("10.0.0.3:1")

	if n := len(l.peers); n != 2 {
		t.Fatalf("tracked peers = %d, want 2", n)
	}
	if _, ok := l.peers["10.0.0.1"]; ok {
		t.Fatalf("least recently seen host should have been evicted")
	}

	now = now.Add(2 * time.Minute)
	l.Limiter("10.0.0.4:1")
	if n := len(l.peers); n != 1 {
		t.Fatalf("idle buckets should be swept, tracked = %d", n)
	}
}
