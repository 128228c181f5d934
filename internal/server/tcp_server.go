package server

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"atrack-svr/internal/codec"
	"atrack-svr/internal/observability"
	"atrack-svr/internal/session"
	"atrack-svr/internal/utilities"
)

// Registry maps device identifiers to their live sessions. Shared between
// the accept loop and the operator console.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uint64]*session.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uint64]*session.Session)}
}

func (r *Registry) Register(id uint64, s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = s
}

func (r *Registry) Deregister(id uint64, s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions[id] == s {
		delete(r.sessions, id)
	}
}

func (r *Registry) Get(id uint64) (*session.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Server accepts device connections and runs one session per socket.
type Server struct {
	registry   *Registry
	catalog    *codec.Catalog
	records    session.RecordSink
	pictures   session.PictureStore
	sessionCfg session.Config
	log        *slog.Logger
}

func New(registry *Registry, catalog *codec.Catalog, records session.RecordSink, pictures session.PictureStore, sessionCfg session.Config, lg *slog.Logger) *Server {
	return &Server{
		registry:   registry,
		catalog:    catalog,
		records:    records,
		pictures:   pictures,
		sessionCfg: sessionCfg,
		log:        lg.With("component", "server"),
	}
}

func (srv *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error starting TCP server: %w", err)
	}
	defer listener.Close()

	srv.log.Info("TCP server listening", "addr", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			srv.log.Error("accept error", "err", err)
			continue
		}
		observability.TCPConnections.Inc()
		go srv.handleConnection(conn)
	}
}

func (srv *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetLinger(0)
		_ = tcpConn.SetNoDelay(false)
		_ = tcpConn.SetKeepAlive(true)
		_ = tcpConn.SetKeepAlivePeriod(60 * time.Second)
	}

	sess := session.New(conn, srv.sessionCfg, srv.catalog, srv.records, srv.pictures, srv.log)
	sess.Start()
	defer sess.Shutdown()

	// The identifier may arrive via keep-alive or the first report header;
	// a device that never identifies itself gets dropped.
	go func() {
		id, ok := sess.GetDeviceID(context.Background())
		if !ok {
			srv.log.Warn("device never identified, closing", "remote", conn.RemoteAddr())
			sess.Close()
			return
		}
		srv.log.Info("device identified", "device", id, "remote", conn.RemoteAddr())
		srv.registry.Register(id, sess)
	}()
	defer func() {
		if id, ok := sess.GetDeviceID(contextExpired()); ok {
			srv.registry.Deregister(id, sess)
			srv.log.Info("device disconnected", "device", id)
		}
	}()

	buffer := make([]byte, 64*1024)
	for {
		n, err := conn.Read(buffer)
		if err != nil {
			if opErr, ok := err.(*net.OpError); ok && opErr.Timeout() {
				continue
			}
			if err != io.EOF {
				srv.log.Warn("read error", "err", err)
			}
			return
		}
		if n == 0 {
			continue
		}

		frame := make([]byte, n)
		copy(frame, buffer[:n])

		utilities.AppendAudit("FRAMES", hex.EncodeToString(frame))
		sess.OnBytesReceived(frame)
	}
}

// contextExpired gives GetDeviceID an already-cancelled context so the
// deregister path never waits: either the id is known or it is not.
func contextExpired() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
