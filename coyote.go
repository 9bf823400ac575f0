package coyote

import (
	"io"
	"log"
	"net"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/indigo-web/coyote/config"
	"github.com/indigo-web/coyote/internal/server/http"
	"github.com/indigo-web/coyote/internal/server/tcp"
	"github.com/indigo-web/coyote/router"
	"github.com/indigo-web/coyote/session"
	"github.com/pkg/errors"
)

// App binds a router to a TCP address. Every connection is served in its own goroutine
// and carries exactly one request.
type App struct {
	addr     string
	cfg      *config.Config
	hooks    hooks
	logger   *log.Logger
	clock    clock.Clock
	sessions *session.Store

	mu     sync.Mutex
	server *tcp.Server
}

// New returns a new App instance.
func New(addr string) *App {
	return &App{
		addr:   addr,
		cfg:    config.Default(),
		logger: log.New(io.Discard, "", 0),
		clock:  clock.New(),
	}
}

// Tune replaces default settings.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger for connection-level errors. By default, nothing is logged.
func (a *App) Logger(logger *log.Logger) *App {
	a.logger = logger
	return a
}

// Clock replaces the clock stamping new sessions.
func (a *App) Clock(clk clock.Clock) *App {
	a.clock = clk
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound. However,
// it isn't strongly guaranteed that the server is able to accept new connections immediately
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed,
// that at the moment as the callback is called, the server isn't able to accept any new
// connections and all the clients are already disconnected
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Sessions returns the session store shared by all the connections. It's nil until Serve
// is called.
func (a *App) Sessions() *session.Store {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.sessions
}

// Addr returns the bound address, or nil if the app isn't serving.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return nil
	}

	return a.server.Addr()
}

// Serve starts the web-application and blocks until it's stopped. Stopping the app
// results in a nil error.
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return errors.Wrap(err, "listen")
	}

	sessions := session.NewStore(a.clock, a.cfg.Session.IDLength)
	httpServer := http.NewServer(a.cfg, r, sessions, a.logger)
	server := tcp.NewServer(sock, httpServer.Serve)

	a.mu.Lock()
	a.sessions = sessions
	a.server = server
	a.mu.Unlock()

	callIfNotNil(a.hooks.OnStart)
	err = server.Start()
	callIfNotNil(a.hooks.OnStop)

	if err == tcp.ErrShutdown {
		return nil
	}

	return errors.Wrap(err, "accept")
}

// GracefulStop stops accepting new connections, but keeps serving old ones.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// will be still working
func (a *App) GracefulStop() error {
	return a.stop((*tcp.Server).GracefulShutdown)
}

// Stop stops the whole application immediately, closing all the connections.
func (a *App) Stop() error {
	return a.stop((*tcp.Server).Stop)
}

func (a *App) stop(how func(*tcp.Server) error) error {
	a.mu.Lock()
	server := a.server
	a.mu.Unlock()

	if server == nil {
		return nil
	}

	return how(server)
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
