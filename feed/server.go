package feed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/orrery/body"
)

// Server serves the hub on /ws
type Server struct {
	hub  *Hub
	http *http.Server
	ln   net.Listener
}

// Listen binds addr and starts serving in the background
func Listen(addr string, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("share listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	s := &Server{
		hub: hub,
		ln:  ln,
		http: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("feed: serve: %v", err)
		}
	}()
	return s, nil
}

// Addr returns the bound address
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown disconnects clients and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.http.Shutdown(ctx)
}

// Publisher decides when the owner should broadcast
// A snapshot goes out only when the registry version moved and the interval allows it
type Publisher struct {
	hub     *Hub
	limiter *rate.Limiter
	version uint64
	sent    bool
}

// NewPublisher creates a publisher emitting at most once per interval
func NewPublisher(hub *Hub, interval time.Duration) *Publisher {
	return &Publisher{
		hub:     hub,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Maybe publishes a snapshot built from the arguments when due
// Reports whether a snapshot was sent
func (p *Publisher) Maybe(now time.Time, version uint64, bodies func() []body.Body, simulating bool, speed float64) bool {
	if p.sent && version == p.version {
		return false
	}
	if !p.limiter.AllowN(now, 1) {
		return false
	}
	if err := p.hub.Publish(NewSnapshot(bodies(), simulating, speed, version)); err != nil {
		log.Printf("feed: %v", err)
		return false
	}
	p.version = version
	p.sent = true
	return true
}
