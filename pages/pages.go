// Package pages implements the routes of the login server: a greeting, the login and the
// registration forms, and static resources for everything else.
package pages

import (
	"log"

	"github.com/indigo-web/coyote/config"
	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/router/table"
	"github.com/indigo-web/coyote/session"
	"github.com/indigo-web/coyote/static"
	"github.com/indigo-web/coyote/users"
	"github.com/pkg/errors"
)

const (
	Greeting         = "Hello world!"
	IndexPage        = "/index.html"
	LoginPage        = "/login.html"
	RegisterPage     = "/register.html"
	UnauthorizedPage = "/401.html"
	NotFoundPage     = "/404.html"
)

type Pages struct {
	cfg       *config.Config
	resources static.Resources
	users     users.Repository
	logger    *log.Logger
}

// New returns the route table:
//
//	GET  /          greeting
//	GET  /login     login page, or redirect to the index if already logged in
//	POST /login     authentication
//	GET  /register  registration page
//	POST /register  registration
//	*               static resource at the request path, 404 page otherwise
func New(
	cfg *config.Config, resources static.Resources, repo users.Repository, logger *log.Logger,
) *table.Router {
	p := &Pages{
		cfg:       cfg,
		resources: resources,
		users:     repo,
		logger:    logger,
	}

	return table.New(p.Static).
		Get("/", p.Greeting).
		Get("/login", p.LoginPage).
		Post("/login", p.Login).
		Get("/register", p.RegisterPage).
		Post("/register", p.Register)
}

func (p *Pages) Greeting(request *http.Request) *http.Response {
	return http.String(request, Greeting)
}

func (p *Pages) LoginPage(request *http.Request) *http.Response {
	if request.Authenticated() {
		return http.Redirect(request, IndexPage)
	}

	return p.serve(request, LoginPage, status.OK)
}

func (p *Pages) Login(request *http.Request) *http.Response {
	form := request.Body.Form()

	user, err := users.Authenticate(p.users, form.Value("account"), form.Value("password"))
	if err != nil {
		return p.serve(request, UnauthorizedPage, status.Unauthorized)
	}

	s := request.Session(true)
	s.Set(session.UserKey, user)
	p.logger.Printf("user %s logged in", user)

	return http.Redirect(request, IndexPage).
		Cookie(cookie.New(p.cfg.Session.CookieName, s.ID))
}

func (p *Pages) RegisterPage(request *http.Request) *http.Response {
	return p.serve(request, RegisterPage, status.OK)
}

func (p *Pages) Register(request *http.Request) *http.Response {
	form := request.Body.Form()
	account, password := form.Value("account"), form.Value("password")
	if len(account) == 0 || len(password) == 0 {
		return http.Error(request, status.ErrBadRequest)
	}

	user, err := users.NewUser(account, password, form.Value("email"), p.cfg.Users.BcryptCost)
	if err != nil {
		p.logger.Printf("register %s: %s", account, err)
		return http.Error(request, status.ErrInternalServerError)
	}

	p.users.Save(user)
	p.logger.Printf("user %s registered", user)

	return http.Redirect(request, IndexPage)
}

// Static serves the resource at the literal request path.
func (p *Pages) Static(request *http.Request) *http.Response {
	return p.serve(request, request.Path, status.OK)
}

// serve responds with the resource at the path. If it can't be read, the 404 page is
// served instead, still reporting 200 OK. If even the 404 page is missing, the response
// is a plain 404 Not Found.
func (p *Pages) serve(request *http.Request, path string, code status.Code) *http.Response {
	data, err := p.resources.Read(path)
	if err != nil {
		if !errors.Is(err, status.ErrNotFound) {
			p.logger.Printf("static %s: %s", path, err)
		}

		if path == NotFoundPage {
			return http.Error(request, status.ErrNotFound)
		}

		return p.serve(request, NotFoundPage, status.OK)
	}

	return request.Respond().
		Code(code).
		ContentType(p.resources.ContentType(path)).
		Bytes(data)
}
