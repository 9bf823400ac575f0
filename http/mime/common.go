package mime

import "strings"

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	XML            MIME = "text/xml"
	JSON           MIME = "application/json"
	PDF            MIME = "application/pdf"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	CSS            MIME = "text/css"
	GIF            MIME = "image/gif"
	JPEG           MIME = "image/jpeg"
	PNG            MIME = "image/png"
	SVG            MIME = "image/svg+xml"
	ICO            MIME = "image/vnd.microsoft.icon"
	WEBP           MIME = "image/webp"
	JS             MIME = "text/javascript"
	WASM           MIME = "application/wasm"
)

// Complies returns whether two MIMEs are compatible. Empty MIME is
// considered compatible with any other MIME
func Complies(mime MIME, with string) bool {
	// get rid of parameters if any
	if semicolon := strings.IndexByte(with, ';'); semicolon != -1 {
		with = with[:semicolon]
	}

	with = strings.TrimSpace(with)
	return len(with) == 0 || strings.EqualFold(with, mime)
}

// ByExtension returns the MIME registered for the file extension (including the leading
// dot), or Plain if there's none.
func ByExtension(ext string) MIME {
	if mime, found := Extension[strings.ToLower(ext)]; found {
		return mime
	}

	return Plain
}
