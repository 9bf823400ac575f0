package tcp

import (
	"net"
	"sync"

	"github.com/pkg/errors"
)

// ErrShutdown is returned by Start after Stop was called.
var ErrShutdown = errors.New("server is shut down")

type OnConn func(net.Conn)

// Server accepts connections and serves each one in its own goroutine.
type Server struct {
	sock     net.Listener
	onConn   OnConn
	wg       sync.WaitGroup
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
}

func NewServer(sock net.Listener, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  make(map[net.Conn]struct{}),
	}
}

// Start runs the accept loop. It returns once the listener fails or is closed, after all
// the in-flight connections are done.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			s.wg.Wait()

			s.mu.Lock()
			shutdown := s.shutdown
			s.mu.Unlock()

			if shutdown {
				return ErrShutdown
			}

			return err
		}

		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go s.connHandler(conn)
	}
}

// GracefulShutdown stops the listener, but leaves all the connections free to end their
// lives peacefully. Repeated calls are no-op
func (s *Server) GracefulShutdown() error {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return nil
	}

	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

// Stop shuts the listener and ALL the connections down
func (s *Server) Stop() error {
	err := s.GracefulShutdown()

	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return err
}

// Addr returns the listener's network address.
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

func (s *Server) connHandler(conn net.Conn) {
	defer s.wg.Done()

	s.onConn(conn)

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
