package session

import (
	"context"
	"sync"
	"time"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRefreshLead     = 30 * time.Second
	defaultMinRefreshDelay = time.Second
	refreshTimeout         = 30 * time.Second
)

// Endpoints abstracts the backend's auth endpoints. The api package's
// SessionsClient satisfies this interface.
type Endpoints interface {
	// Login exchanges credentials for tokens.
	Login(ctx context.Context, username, password string) (sdk.AuthResponse, error)
	// Refresh exchanges a refresh token for fresh tokens.
	Refresh(ctx context.Context, refreshToken string) (sdk.AuthResponse, error)
	// Logout invalidates a refresh token server-side.
	Logout(ctx context.Context, refreshToken string) error
}

// ManagerConfig holds a Manager's collaborators. Only Endpoints and Store are
// required.
type ManagerConfig struct {
	Endpoints Endpoints
	Store     Store
	// Clock, when nil, defaults to the wall clock. Tests substitute a mock so
	// that scheduled refreshes can be exercised without real waits.
	Clock clock.Clock
	// Logger, when nil, defaults to a no-op logger.
	Logger *zerolog.Logger
	// RefreshLead is how far ahead of token expiry a silent refresh is
	// scheduled. Defaults to 30 seconds.
	RefreshLead time.Duration
	// MinRefreshDelay is the soonest a scheduled refresh may fire. Defaults
	// to 1 second.
	MinRefreshDelay time.Duration
	// Metrics, when non-nil, counts lifecycle outcomes.
	Metrics *Metrics
}

// Manager is the single source of truth for the authentication session. All
// session mutation flows through its Login, Logout, Refresh, and Init
// operations; at most one scheduled-refresh timer exists at any time.
type Manager struct {
	endpoints       Endpoints
	store           Store
	clock           clock.Clock
	log             zerolog.Logger
	refreshLead     time.Duration
	minRefreshDelay time.Duration
	metrics         *Metrics

	refreshGroup singleflight.Group

	mu            sync.Mutex
	accessToken   string
	refreshToken  string
	expiresAt     time.Time
	user          *sdk.User
	authenticated bool
	lastErr       string
	lastLogin     time.Time
	refreshTimer  *clock.Timer
	// loginCount counts successful logins. Logout compares it across its
	// unlocked server-side call so a login that completed in that window
	// isn't clobbered.
	loginCount uint64
}

// NewManager returns a Manager that is empty until Init or Login populates
// it.
func NewManager(config ManagerConfig) *Manager {
	m := &Manager{
		endpoints:       config.Endpoints,
		store:           config.Store,
		clock:           config.Clock,
		refreshLead:     config.RefreshLead,
		minRefreshDelay: config.MinRefreshDelay,
		metrics:         config.Metrics,
	}
	if m.clock == nil {
		m.clock = clock.New()
	}
	if config.Logger != nil {
		m.log = *config.Logger
	} else {
		m.log = zerolog.Nop()
	}
	if m.refreshLead <= 0 {
		m.refreshLead = defaultRefreshLead
	}
	if m.minRefreshDelay <= 0 {
		m.minRefreshDelay = defaultMinRefreshDelay
	}
	return m
}

// State returns a snapshot of the session.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		AccessToken:   m.accessToken,
		RefreshToken:  m.refreshToken,
		ExpiresAt:     m.expiresAt,
		User:          m.user,
		Authenticated: m.authenticated,
		Error:         m.lastErr,
	}
}

// AccessToken returns the current bearer credential, or "" when
// unauthenticated.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accessToken
}

// HasRefreshToken indicates whether a silent refresh is even possible.
func (m *Manager) HasRefreshToken() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshToken != ""
}

// SinceLogin returns how long ago the last successful login completed.
func (m *Manager) SinceLogin() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastLogin.IsZero() {
		return time.Duration(1<<63 - 1)
	}
	return m.clock.Now().Sub(m.lastLogin)
}

// Login exchanges credentials for a session. On success the session is
// populated, persisted, and a silent refresh is scheduled. On failure the
// error message is retained for display and the error is returned so callers
// can surface it inline; a failed login never transitions an authenticated
// session to unauthenticated.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	resp, err := m.endpoints.Login(ctx, username, password)
	if err != nil {
		m.mu.Lock()
		m.lastErr = err.Error()
		m.mu.Unlock()
		m.log.Warn().Err(err).Str("username", username).Msg("login failed")
		m.metrics.observeLogin("error")
		return errors.Wrap(err, "error logging in")
	}
	if !resp.Success || resp.Token == "" {
		reason := resp.Error
		if reason == "" {
			reason = "login failed"
		}
		m.mu.Lock()
		m.lastErr = reason
		m.mu.Unlock()
		m.log.Warn().Str("username", username).Str("reason", reason).
			Msg("login rejected")
		m.metrics.observeLogin("rejected")
		return &sdk.ErrAuthentication{Reason: reason}
	}

	m.mu.Lock()
	m.applyAuthResponse(resp)
	m.lastLogin = m.clock.Now()
	m.loginCount++
	m.scheduleRefresh()
	m.persist()
	m.mu.Unlock()
	m.log.Debug().Str("username", username).Msg("login succeeded")
	m.metrics.observeLogin("success")
	return nil
}

// Logout cancels any pending refresh, best-effort invalidates the refresh
// token server-side, and clears all session state. It always succeeds
// locally, even when the network call fails, and is safe to call when
// already unauthenticated.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	refreshToken := m.refreshToken
	loginCount := m.loginCount
	m.cancelRefresh()
	m.mu.Unlock()

	if refreshToken != "" {
		// Even if the backend can't be reached, we still tear down locally.
		if err := m.endpoints.Logout(ctx, refreshToken); err != nil {
			m.log.Warn().Err(err).Msg("server-side logout failed; continuing")
		}
	}

	m.mu.Lock()
	if m.loginCount != loginCount {
		// A login completed while the server-side call was in flight; the new
		// session wins and there is nothing left to tear down.
		m.mu.Unlock()
		return
	}
	m.accessToken = ""
	m.refreshToken = ""
	m.expiresAt = time.Time{}
	m.user = nil
	m.authenticated = false
	m.lastErr = ""
	m.lastLogin = time.Time{}
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("error clearing persisted session")
	}
	m.log.Debug().Msg("logged out")
}

// Refresh exchanges the refresh token for fresh credentials. With no refresh
// token on hand it returns false immediately, without network I/O. Refresh
// failure is terminal: the session is logged out and false is returned.
// Concurrent callers share a single in-flight refresh.
func (m *Manager) Refresh(ctx context.Context) (bool, error) {
	m.mu.Lock()
	refreshToken := m.refreshToken
	m.mu.Unlock()
	if refreshToken == "" {
		return false, nil
	}

	refreshed, err, _ := m.refreshGroup.Do("refresh", func() (interface{}, error) {
		m.mu.Lock()
		refreshToken := m.refreshToken
		m.mu.Unlock()
		if refreshToken == "" {
			return false, nil
		}

		resp, err := m.endpoints.Refresh(ctx, refreshToken)
		if err != nil {
			m.log.Warn().Err(err).Msg("token refresh failed; logging out")
			m.metrics.observeRefresh("error")
			m.Logout(ctx)
			return false, err
		}
		if !resp.Success || resp.Token == "" {
			m.log.Warn().Str("reason", resp.Error).
				Msg("token refresh rejected; logging out")
			m.metrics.observeRefresh("rejected")
			m.Logout(ctx)
			return false, nil
		}

		m.mu.Lock()
		m.applyAuthResponse(resp)
		m.scheduleRefresh()
		m.persist()
		m.mu.Unlock()
		m.log.Debug().Msg("token refreshed")
		m.metrics.observeRefresh("success")
		return true, nil
	})
	return refreshed.(bool), err
}

// Init hydrates the session from the Store. It is called once at startup.
// A persisted session that is intact and unexpired is resumed as-is; an
// expired or partial one is recovered via Refresh when a refresh token
// exists, and torn down otherwise.
func (m *Manager) Init(ctx context.Context) error {
	persisted, err := m.store.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("error loading persisted session; starting clean")
		return nil
	}
	if persisted == nil {
		return nil
	}

	expiresAt := time.Time{}
	if persisted.ExpiresAt != 0 {
		expiresAt = time.UnixMilli(persisted.ExpiresAt)
	}
	expired := !expiresAt.IsZero() && !expiresAt.After(m.clock.Now())
	intact := persisted.AccessToken != "" && persisted.User != nil

	switch {
	case intact && !expired:
		m.mu.Lock()
		m.accessToken = persisted.AccessToken
		m.refreshToken = persisted.RefreshToken
		m.expiresAt = expiresAt
		m.user = persisted.User
		m.authenticated = true
		m.scheduleRefresh()
		m.mu.Unlock()
		m.log.Debug().Msg("resumed persisted session")
	case intact && persisted.RefreshToken != "":
		m.mu.Lock()
		m.refreshToken = persisted.RefreshToken
		m.user = persisted.User
		m.mu.Unlock()
		if _, err := m.Refresh(ctx); err != nil {
			return errors.Wrap(err, "error refreshing expired session")
		}
	case intact:
		// Expired with no way to refresh.
		m.Logout(ctx)
	case persisted.RefreshToken != "":
		// A partial session-- e.g. a token with no user-- can't satisfy the
		// authenticated contract, but a refresh re-delivers everything.
		m.mu.Lock()
		m.refreshToken = persisted.RefreshToken
		m.user = persisted.User
		m.mu.Unlock()
		if _, err := m.Refresh(ctx); err != nil {
			return errors.Wrap(err, "error refreshing partial session")
		}
	default:
		// Nothing usable; remain unauthenticated.
	}
	return nil
}

// applyAuthResponse records a successful login/refresh response. The caller
// must hold m.mu.
func (m *Manager) applyAuthResponse(resp sdk.AuthResponse) {
	m.accessToken = resp.Token
	if resp.RefreshToken != "" {
		m.refreshToken = resp.RefreshToken
	}
	if resp.ExpiresIn > 0 {
		m.expiresAt = m.clock.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	} else {
		m.expiresAt = time.Time{}
	}
	if resp.User != nil {
		m.user = resp.User
	}
	m.authenticated = true
	m.lastErr = ""
}

// scheduleRefresh arms the single refresh timer to fire shortly before the
// access token expires, cancelling any timer already armed. An unknown
// expiry leaves no timer at all-- including one armed for an earlier
// expiry. The caller must hold m.mu.
func (m *Manager) scheduleRefresh() {
	m.cancelRefresh()
	if m.expiresAt.IsZero() {
		return
	}
	delay := m.expiresAt.Sub(m.clock.Now()) - m.refreshLead
	if delay < m.minRefreshDelay {
		delay = m.minRefreshDelay
	}
	m.refreshTimer = m.clock.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if _, err := m.Refresh(ctx); err != nil {
			m.log.Warn().Err(err).Msg("scheduled refresh failed")
		}
	})
	m.log.Debug().Dur("delay", delay).Msg("refresh scheduled")
}

// cancelRefresh disarms the refresh timer, if armed. The caller must hold
// m.mu.
func (m *Manager) cancelRefresh() {
	if m.refreshTimer != nil {
		m.refreshTimer.Stop()
		m.refreshTimer = nil
	}
}

// persist writes the session through the Store. Persistence trouble is
// logged, never fatal-- the in-memory session remains authoritative. The
// caller must hold m.mu.
func (m *Manager) persist() {
	persisted := PersistedSession{
		User:            m.user,
		AccessToken:     m.accessToken,
		RefreshToken:    m.refreshToken,
		IsAuthenticated: m.authenticated,
	}
	if !m.expiresAt.IsZero() {
		persisted.ExpiresAt = m.expiresAt.UnixMilli()
	}
	if err := m.store.Save(persisted); err != nil {
		m.log.Warn().Err(err).Msg("error persisting session")
	}
}
