package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/coyote"
	"github.com/indigo-web/coyote/config"
	"github.com/indigo-web/coyote/pages"
	"github.com/indigo-web/coyote/resources"
	"github.com/indigo-web/coyote/static"
	"github.com/indigo-web/coyote/users"
	"github.com/pkg/errors"
)

var (
	addr      = flag.String("addr", "localhost:8080", "address to listen on")
	staticDir = flag.String("static", "", "directory with the pages; the embedded ones are used if empty")
	usersFile = flag.String("users", "", "JSON file with the users; a single demo user is seeded if empty")
)

func loadUsers(cfg *config.Config) (*users.Memory, error) {
	if len(*usersFile) == 0 {
		gugu, err := users.NewUser("gugu", "password", "hkkang@woowahan.com", cfg.Users.BcryptCost)
		if err != nil {
			return nil, errors.Wrap(err, "seeding users")
		}

		return users.NewMemory(gugu), nil
	}

	loaded, err := users.LoadFile(*usersFile, cfg.Users.BcryptCost)
	if err != nil {
		return nil, err
	}

	return users.NewMemory(loaded...), nil
}

func pageResources() static.FS {
	if len(*staticDir) == 0 {
		return static.New(resources.Pages())
	}

	return static.Dir(*staticDir)
}

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "coyote: ", log.LstdFlags)
	cfg := config.Default()

	repo, err := loadUsers(cfg)
	if err != nil {
		logger.Fatal(err)
	}

	r := pages.New(cfg, pageResources(), repo, logger).
		Use(pages.Logging(logger))

	app := coyote.New(*addr).
		Tune(cfg).
		Logger(logger).
		NotifyOnStart(func() {
			logger.Println("listening on", *addr)
		}).
		NotifyOnStop(func() {
			logger.Println("stopped")
		})

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals

		if err := app.GracefulStop(); err != nil {
			logger.Println(err)
		}
	}()

	if err := app.Serve(r); err != nil {
		logger.Fatal(err)
	}
}
