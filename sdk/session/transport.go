package session

import (
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
)

const defaultLoginGrace = 2 * time.Second

// TransportConfig holds a Transport's collaborators. Only Manager is
// required.
type TransportConfig struct {
	Manager *Manager
	// Base, when nil, defaults to http.DefaultTransport.
	Base http.RoundTripper
	// Logger, when nil, defaults to a no-op logger.
	Logger *zerolog.Logger
	// LoginGrace is the window after a login within which a 401-triggered
	// refresh pauses briefly before proceeding, to avoid racing a just-issued
	// token. Defaults to 2 seconds; negative disables.
	LoginGrace time.Duration
}

// Transport is an http.RoundTripper that attaches the current bearer token
// and a stable per-process correlation id to every outgoing request and,
// when a request draws an authorization failure, recovers exactly once via
// silent refresh before giving up.
type Transport struct {
	manager       *Manager
	base          http.RoundTripper
	log           zerolog.Logger
	loginGrace    time.Duration
	correlationID string
}

// NewTransport returns a Transport around config.Base.
func NewTransport(config TransportConfig) *Transport {
	t := &Transport{
		manager:       config.Manager,
		base:          config.Base,
		loginGrace:    config.LoginGrace,
		correlationID: uuid.NewV4().String(),
	}
	if t.base == nil {
		t.base = http.DefaultTransport
	}
	if config.Logger != nil {
		t.log = *config.Logger
	} else {
		t.log = zerolog.Nop()
	}
	if t.loginGrace == 0 {
		t.loginGrace = defaultLoginGrace
	}
	return t
}

// CorrelationID returns the id this Transport stamps on every request.
func (t *Transport) CorrelationID() string {
	return t.correlationID
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(t.decorate(req))
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// The request drew an authorization failure. Auth and health endpoints
	// are exempt from recovery so that, e.g., a login form's own rejection
	// surfaces untouched.
	if exemptFromRecovery(req.URL.Path) {
		return resp, nil
	}
	if !t.manager.HasRefreshToken() {
		return resp, nil
	}
	// A body we can't replay rules out a retry.
	if req.Body != nil && req.GetBody == nil {
		t.log.Debug().Str("path", req.URL.Path).
			Msg("401 on non-replayable request; not retrying")
		return resp, nil
	}

	// If a login just happened, the failure may have raced the newly issued
	// token; back off a beat before refreshing.
	if t.loginGrace > 0 && t.manager.SinceLogin() < t.loginGrace {
		t.manager.clock.Sleep(
			100*time.Millisecond + time.Duration(rand.Intn(300))*time.Millisecond,
		)
	}

	refreshed, refreshErr := t.manager.Refresh(req.Context())
	if refreshErr != nil || !refreshed {
		// Refresh failure already logged the session out; forward the
		// original rejection.
		t.log.Debug().Str("path", req.URL.Path).
			Msg("silent refresh failed; forwarding original 401")
		return resp, nil
	}

	// Re-issue the original request, once, with the new token.
	drain(resp)
	retry := t.decorate(req)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return resp, nil
		}
		retry.Body = body
	}
	t.log.Debug().Str("path", req.URL.Path).Msg("retrying after silent refresh")
	return t.base.RoundTrip(retry)
}

// decorate clones req and stamps it with the bearer token and correlation
// id. RoundTrippers must not mutate the caller's request.
func (t *Transport) decorate(req *http.Request) *http.Request {
	out := req.Clone(req.Context())
	if token := t.manager.AccessToken(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}
	out.Header.Set("X-Correlation-ID", t.correlationID)
	return out
}

// exemptFromRecovery reports whether a path belongs to the auth flow itself
// or to health checking, neither of which a silent refresh may intercept.
func exemptFromRecovery(path string) bool {
	for _, suffix := range []string{
		"/auth/login",
		"/auth/refresh",
		"/auth/logout",
		"/healthz",
	} {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func drain(resp *http.Response) {
	if resp.Body != nil {
		io.Copy(io.Discard, resp.Body) // nolint: errcheck
		resp.Body.Close()
	}
}
