package mime

type Charset = string

const (
	UTF8  Charset = "utf-8"
	ASCII Charset = "us-ascii"
)

// WithCharset renders the Content-Type value: the MIME followed by its default charset,
// if any.
func WithCharset(mime MIME) string {
	charset, found := DefaultCharset[mime]
	if !found {
		return mime
	}

	return mime + ";charset=" + charset
}
