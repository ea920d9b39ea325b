package resolve

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"oai-dc-mapper/internal/item"
)

// ErrUnknownDerivative is returned for a derivative kind with no directory.
var ErrUnknownDerivative = errors.New("unknown derivative kind")

// derivativeDirs maps a derivative kind to its directory below the files URL.
var derivativeDirs = map[string]string{
	item.DerivativeOriginal:        "original",
	item.DerivativeFullsize:        "fullsize",
	item.DerivativeThumbnail:       "thumbnails",
	item.DerivativeSquareThumbnail: "square_thumbnails",
}

// parseBase parses raw as an absolute base URL.
func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", raw, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", raw)
	}

	return u, nil
}

// URLs resolves display URLs below a site base URL.
type URLs struct {
	base *url.URL
}

// NewURLs creates a display URL resolver. base must be absolute.
func NewURLs(base string) (*URLs, error) {
	u, err := parseBase(base)
	if err != nil {
		return nil, err
	}

	return &URLs{base: u}, nil
}

// DisplayURL returns <base>/items/show/<id>.
func (u *URLs) DisplayURL(it item.Item) (string, error) {
	return u.base.JoinPath("items", "show", strconv.FormatInt(it.ID(), 10)).String(), nil
}

// Derivatives resolves derivative file URLs below a files base URL.
type Derivatives struct {
	base *url.URL
}

var _ item.DerivativeResolver = (*Derivatives)(nil)

// NewDerivatives creates a derivative resolver. base must be absolute.
func NewDerivatives(base string) (*Derivatives, error) {
	u, err := parseBase(base)
	if err != nil {
		return nil, err
	}

	return &Derivatives{base: u}, nil
}

// Path implements item.DerivativeResolver.
func (d *Derivatives) Path(filename, kind string) (string, error) {
	dir, ok := derivativeDirs[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDerivative, kind)
	}

	if filename == "" {
		return "", errors.New("empty file name")
	}

	name := path.Base(filename)
	if kind != item.DerivativeOriginal {
		name = strings.TrimSuffix(name, path.Ext(name)) + ".jpg"
	}

	return d.base.JoinPath(dir, name).String(), nil
}
