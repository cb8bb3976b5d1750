package rpc

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const (
	// DefaultMaxPeers caps how many per-host buckets are kept at once.
	DefaultMaxPeers = 10000
	// DefaultPeerIdle is how long a bucket may go unused before it can be
	// evicted to make room for a new host.
	DefaultPeerIdle = 10 * time.Minute
)

type peerBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PeerRateLimiter keeps one token bucket per remote host. Connections from the
// same host share a bucket whatever their source port.
type PeerRateLimiter struct {
	mu       sync.Mutex
	peers    map[string]*peerBucket
	r        rate.Limit
	b        int
	maxPeers int
	idle     time.Duration
	now      func() time.Time
}

// NewPeerRateLimiter allows r requests per second per peer host with bursts of b.
func NewPeerRateLimiter(r rate.Limit, b int) *PeerRateLimiter {
	return &PeerRateLimiter{
		peers:    make(map[string]*peerBucket),
		r:        r,
		b:        b,
		maxPeers: DefaultMaxPeers,
		idle:     DefaultPeerIdle,
		now:      time.Now,
	}
}

// PeerHost strips the port from a "host:port" address. Addresses without a
// port, such as in-memory listeners, are returned unchanged.
func PeerHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

// Limiter returns the bucket for the host of addr, creating it on first use.
func (l *PeerRateLimiter) Limiter(addr string) *rate.Limiter {
	host := PeerHost(addr)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if bucket, ok := l.peers[host]; ok {
		bucket.lastSeen = now
		return bucket.limiter
	}
	if len(l.peers) >= l.maxPeers {
		l.evict(now)
	}
	bucket := &peerBucket{limiter: rate.NewLimiter(l.r, l.b), lastSeen: now}
	l.peers[host] = bucket
	return bucket.limiter
}

// evict drops idle buckets, or the least recently seen one when none is idle.
// Callers hold l.mu.
func (l *PeerRateLimiter) evict(now time.Time) {
	var (
		oldest     string
		oldestSeen time.Time
		found      bool
	)
	for host, bucket := range l.peers {
		if now.Sub(bucket.lastSeen) >= l.idle {
			delete(l.peers, host)
			continue
		}
		if !found || bucket.lastSeen.Before(oldestSeen) {
			oldest, oldestSeen, found = host, bucket.lastSeen, true
		}
	}
	if len(l.peers) >= l.maxPeers && found {
		delete(l.peers, oldest)
	}
}

// UnaryServerInterceptor rejects requests over the peer's budget with
// ResourceExhausted. A nil limiter lets everything through.
func (l *PeerRateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if l == nil {
			return handler(ctx, req)
		}
		addr := "unknown"
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			addr = p.Addr.String()
		}
		if !l.Limiter(addr).Allow() {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for %s", PeerHost(addr))
		}
		return handler(ctx, req)
	}
}
