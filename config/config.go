package config

import (
	"github.com/indigo-web/coyote/http/cookie"
	"golang.org/x/crypto/bcrypt"
)

type (
	URIRequestLineSize struct {
		// Maximal is the longest request line accepted, in bytes. Longer lines are
		// answered with 414 Request URI Too Long.
		Maximal int
	}

	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		// Maximal limits the summary length of all the header lines, in bytes.
		Maximal int
	}
)

type (
	URI struct {
		RequestLineSize URIRequestLineSize
	}

	Headers struct {
		// Number is responsible for headers storage size.
		// Default value is an initial size of allocated headers storage.
		// Maximal value is maximum number of headers allowed to be presented
		Number HeadersNumber
		// Space limits the amount of memory occupied by request headers.
		Space HeadersSpace
	}

	Body struct {
		// MaxSize describes the maximal Content-Length accepted. Bigger bodies are rejected
		// with 413 Request Entity Too Large before anything is read.
		MaxSize int
	}

	Session struct {
		// CookieName is the cookie carrying the session identifier.
		CookieName string
		// IDLength is the number of random characters in a session identifier.
		IDLength int
	}

	Users struct {
		// BcryptCost is the cost used to hash passwords of newly registered users.
		BcryptCost int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// WriteBufferSize is the initial capacity of the buffer the response is rendered
		// into. It grows to fit bigger responses.
		WriteBufferSize int
	}
)

// Config holds settings used across various parts of coyote, mainly restrictions, limitations
// and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	Session Session
	Users   Users
	NET     NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				// most web-entities limit it to 4-8kb
				Maximal: 8 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 50,
			},
			Space: HeadersSpace{
				Maximal: 16 * 1024, // there might be extremely long cookies.
			},
		},
		Body: Body{
			MaxSize: 1024 * 1024,
		},
		Session: Session{
			CookieName: cookie.SessionName,
			IDLength:   32,
		},
		Users: Users{
			BcryptCost: bcrypt.DefaultCost,
		},
		NET: NET{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
		},
	}
}
