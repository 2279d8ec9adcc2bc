package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/friendsofgo/errors"

	"shopfront/pkg/errs"
)

// Outbound header names carried on every authenticated call.
const (
	headerAuthorization = "Authorization"
	headerUserID        = "X-User-Id"
)

// SetIdentity installs the default auth headers used by every subsequent
// call. Both values are replaced together; a second login fully overwrites
// the first.
func (c *Client) SetIdentity(accessToken, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearerToken = accessToken
	c.userID = userID
}

// ClearIdentity removes the default auth headers.
func (c *Client) ClearIdentity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearerToken = ""
	c.userID = ""
}

// BearerToken returns the currently installed access token, if any.
func (c *Client) BearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearerToken
}

func (c *Client) applyIdentity(req *http.Request) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.bearerToken != "" {
		req.Header.Set(headerAuthorization, "Bearer "+c.bearerToken)
	}
	if c.userID != "" {
		req.Header.Set(headerUserID, c.userID)
	}
}

// call performs one backend request and returns the decoded envelope.
// Error mapping, in order: transport problems become *errs.TransportError,
// HTTP 401 becomes errs.ErrUnauthorized, a non-success envelope with field
// errors becomes *errs.ValidationErrors, any other non-success envelope
// becomes *errs.RemoteError.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body any) (*envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "storeapi.%s: marshal request", op)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "storeapi.%s: build request", op)
	}
	req.Header.Set("Accept", "*/*")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.applyIdentity(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.l.Warnf(ctx, "pkg.storeapi.%s: %s %s: %v", op, method, path, err)
		return nil, errs.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errs.ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}

	env := &envelope{}
	if err := json.Unmarshal(raw, env); err != nil {
		c.l.Warnf(ctx, "pkg.storeapi.%s: %s %s: unreadable response", op, method, path)
		return nil, errs.NewTransportError(op, errors.Wrap(err, "decode envelope"))
	}

	if env.Code != CodeSuccess {
		if len(env.Errors) > 0 {
			return nil, errs.NewValidationErrors(env.Errors...)
		}
		return nil, errs.NewRemoteError(env.Code, env.Message)
	}

	return env, nil
}

// callInto runs call and unmarshals the envelope data into out when non-nil.
func (c *Client) callInto(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	env, err := c.call(ctx, op, method, path, query, body)
	if err != nil {
		return err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errs.NewTransportError(op, errors.Wrap(err, "decode data"))
		}
	}
	return nil
}
