package acrotex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Open resolves source to a readable stream. Source may be a local path
// (with optional ~/ prefix), a file:// URL or an http(s):// URL. A nil
// client uses http.DefaultClient.
func Open(ctx context.Context, source string, client *http.Client) (io.ReadCloser, error) {
	raw := strings.TrimSpace(source)
	if raw == "" {
		return nil, errors.New("open: empty input")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	u, err := url.Parse(raw)
	if err == nil && len(u.Scheme) > 1 {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return openURL(ctx, raw, client)
		case "file":
			return openFile(fileURLPath(u))
		}
	}
	return openFile(raw)
}

func openURL(ctx context.Context, raw string, client *http.Client) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("open %s: build request: %w", raw, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", raw, ErrInputNotFound, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("open %s: %w: status %s", raw, ErrInputNotFound, resp.Status)
	}
	return resp.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	clean := NormalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("open: %w: %w", ErrInputNotFound, err)
	}
	info, err := f.Stat()
	if err == nil && info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w: is a directory", clean, ErrInputNotFound)
	}
	return f, nil
}

func fileURLPath(u *url.URL) string {
	p := u.Path
	if p == "" {
		p = u.Host
	}
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}
	return p
}

// NormalizePath expands a leading ~ and makes path absolute when possible.
func NormalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
