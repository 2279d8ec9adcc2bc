package storeapi

import (
	"errors"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"shopfront/pkg/log"
)

// DefaultTimeout bounds every backend call when the config does not set one.
const DefaultTimeout = 15 * time.Second

// New creates a backend client. The client keeps a cookie jar because the
// backend is cookie-assisted: the post-login profile warm-up call sets a
// server-side session cookie that later protected calls ride on.
func New(l log.Logger, cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("storeapi: base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		l:       l,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}
