package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// MaxSize caps how much is read from any single source.
const MaxSize = 8 << 20

// Reader fetches raw bytes from paths and URLs.
type Reader struct {
	HTTP *http.Client
}

// New returns a Reader using c, or http.DefaultClient when c is nil.
func New(c *http.Client) *Reader {
	if c == nil {
		c = http.DefaultClient
	}
	return &Reader{HTTP: c}
}

// IsURL reports whether s names an http or https resource.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Read returns the contents of loc.
func (r *Reader) Read(ctx context.Context, loc string) ([]byte, error) {
	if IsURL(loc) {
		return r.get(ctx, loc)
	}
	f, err := os.Open(loc)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCapped(f, loc)
}

func (r *Reader) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("get %s: %s", u, resp.Status)
	}
	return readCapped(resp.Body, u)
}

func readCapped(rd io.Reader, loc string) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(rd, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxSize {
		return nil, fmt.Errorf("%s: larger than %d bytes", loc, MaxSize)
	}
	return b, nil
}
