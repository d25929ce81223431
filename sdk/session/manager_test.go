package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

type fakeEndpoints struct {
	mu           sync.Mutex
	loginFn      func(username, password string) (sdk.AuthResponse, error)
	refreshFn    func(refreshToken string) (sdk.AuthResponse, error)
	logoutErr    error
	loginCalls   int
	refreshCalls int
	logoutCalls  int
	refreshGate  chan struct{}
	logoutGate   chan struct{}
}

func (f *fakeEndpoints) Login(
	_ context.Context,
	username string,
	password string,
) (sdk.AuthResponse, error) {
	f.mu.Lock()
	f.loginCalls++
	fn := f.loginFn
	f.mu.Unlock()
	return fn(username, password)
}

func (f *fakeEndpoints) Refresh(
	_ context.Context,
	refreshToken string,
) (sdk.AuthResponse, error) {
	f.mu.Lock()
	f.refreshCalls++
	fn := f.refreshFn
	gate := f.refreshGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return fn(refreshToken)
}

func (f *fakeEndpoints) Logout(context.Context, string) error {
	f.mu.Lock()
	f.logoutCalls++
	err := f.logoutErr
	gate := f.logoutGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return err
}

func (f *fakeEndpoints) counts() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginCalls, f.refreshCalls, f.logoutCalls
}

type memStore struct {
	mu        sync.Mutex
	persisted *PersistedSession
	saves     int
	clears    int
}

func (m *memStore) Load() (*PersistedSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persisted, nil
}

func (m *memStore) Save(persisted PersistedSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persisted = &persisted
	m.saves++
	return nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persisted = nil
	m.clears++
	return nil
}

func okLogin(token, refreshToken string, expiresIn int64) func(
	string,
	string,
) (sdk.AuthResponse, error) {
	return func(string, string) (sdk.AuthResponse, error) {
		return sdk.AuthResponse{
			Success:      true,
			Token:        token,
			RefreshToken: refreshToken,
			ExpiresIn:    expiresIn,
			User:         &sdk.User{Name: "Alice", Email: "alice@example.com"},
		}, nil
	}
}

func okRefresh(token, refreshToken string, expiresIn int64) func(
	string,
) (sdk.AuthResponse, error) {
	return func(string) (sdk.AuthResponse, error) {
		return sdk.AuthResponse{
			Success:      true,
			Token:        token,
			RefreshToken: refreshToken,
			ExpiresIn:    expiresIn,
		}, nil
	}
}

func TestLoginSuccessSchedulesRefresh(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		loginFn:   okLogin("A1", "R1", 3600),
		refreshFn: okRefresh("A2", "R2", 3600),
	}
	store := &memStore{}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     mock,
	})

	require.NoError(t, m.Login(context.Background(), "alice", "correct"))

	state := m.State()
	require.True(t, state.Authenticated)
	require.Equal(t, "A1", state.AccessToken)
	require.Equal(t, "R1", state.RefreshToken)
	require.Equal(t, mock.Now().Add(3600*time.Second), state.ExpiresAt)
	require.NotNil(t, state.User)
	require.Equal(t, "alice@example.com", state.User.Email)
	require.Empty(t, state.Error)

	// The session is persisted, token mirror included.
	store.mu.Lock()
	require.NotNil(t, store.persisted)
	require.Equal(t, "A1", store.persisted.AccessToken)
	require.True(t, store.persisted.IsAuthenticated)
	store.mu.Unlock()

	// The refresh timer fires 30s ahead of expiry, not a moment sooner.
	mock.Add(3569 * time.Second)
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 0, refreshes)
	mock.Add(time.Second)
	_, refreshes, _ = endpoints.counts()
	require.Equal(t, 1, refreshes)
	require.Equal(t, "A2", m.AccessToken())
}

func TestLoginRejected(t *testing.T) {
	endpoints := &fakeEndpoints{
		loginFn: func(string, string) (sdk.AuthResponse, error) {
			return sdk.AuthResponse{
				Success: false,
				Error:   "Invalid credentials",
			}, nil
		},
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     clock.NewMock(),
	})

	err := m.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid credentials")

	state := m.State()
	require.False(t, state.Authenticated)
	require.Empty(t, state.AccessToken)
	require.Equal(t, "Invalid credentials", state.Error)
}

func TestLoginNetworkErrorLeavesStateUnchanged(t *testing.T) {
	endpoints := &fakeEndpoints{
		loginFn: func(string, string) (sdk.AuthResponse, error) {
			return sdk.AuthResponse{}, context.DeadlineExceeded
		},
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     clock.NewMock(),
	})

	require.Error(t, m.Login(context.Background(), "alice", "correct"))
	state := m.State()
	require.False(t, state.Authenticated)
	require.Empty(t, state.AccessToken)
	require.NotEmpty(t, state.Error)
}

func TestLogoutIsIdempotent(t *testing.T) {
	endpoints := &fakeEndpoints{}
	store := &memStore{}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     clock.NewMock(),
	})

	m.Logout(context.Background())
	m.Logout(context.Background())

	state := m.State()
	require.False(t, state.Authenticated)
	require.Empty(t, state.AccessToken)
	require.Empty(t, state.RefreshToken)
	// No refresh token means no server-side invalidation call either.
	_, _, logouts := endpoints.counts()
	require.Equal(t, 0, logouts)
}

func TestLogoutCancelsScheduledRefresh(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		loginFn:   okLogin("A1", "R1", 3600),
		refreshFn: okRefresh("A2", "R2", 3600),
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     mock,
	})

	require.NoError(t, m.Login(context.Background(), "alice", "correct"))
	m.Logout(context.Background())

	mock.Add(4000 * time.Second)
	_, refreshes, logouts := endpoints.counts()
	require.Equal(t, 0, refreshes)
	require.Equal(t, 1, logouts)
}

func TestLogoutSucceedsLocallyDespiteServerError(t *testing.T) {
	endpoints := &fakeEndpoints{
		loginFn:   okLogin("A1", "R1", 0),
		logoutErr: context.DeadlineExceeded,
	}
	store := &memStore{}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     clock.NewMock(),
	})

	require.NoError(t, m.Login(context.Background(), "alice", "correct"))
	m.Logout(context.Background())

	state := m.State()
	require.False(t, state.Authenticated)
	require.Empty(t, state.AccessToken)
	store.mu.Lock()
	require.Nil(t, store.persisted)
	store.mu.Unlock()
}

func TestRefreshWithoutTokenIsANoOp(t *testing.T) {
	endpoints := &fakeEndpoints{}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     clock.NewMock(),
	})

	refreshed, err := m.Refresh(context.Background())
	require.NoError(t, err)
	require.False(t, refreshed)
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 0, refreshes)
}

func TestRefreshFailureLogsOut(t *testing.T) {
	endpoints := &fakeEndpoints{
		loginFn: okLogin("A1", "R1", 3600),
		refreshFn: func(string) (sdk.AuthResponse, error) {
			return sdk.AuthResponse{Success: false}, nil
		},
	}
	store := &memStore{}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     clock.NewMock(),
	})

	require.NoError(t, m.Login(context.Background(), "alice", "correct"))

	refreshed, err := m.Refresh(context.Background())
	require.NoError(t, err)
	require.False(t, refreshed)

	state := m.State()
	require.False(t, state.Authenticated)
	require.Empty(t, state.AccessToken)
	require.Empty(t, state.RefreshToken)
	_, _, logouts := endpoints.counts()
	require.Equal(t, 1, logouts)
}

func TestConcurrentRefreshesShareOneFlight(t *testing.T) {
	gate := make(chan struct{})
	endpoints := &fakeEndpoints{
		loginFn:     okLogin("A1", "R1", 3600),
		refreshFn:   okRefresh("A2", "R2", 3600),
		refreshGate: gate,
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     clock.NewMock(),
	})
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			refreshed, err := m.Refresh(context.Background())
			require.NoError(t, err)
			results[i] = refreshed
		}(i)
	}
	// Give both goroutines time to join the flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	require.True(t, results[0])
	require.True(t, results[1])
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 1, refreshes)
}

func TestReschedulingCancelsThePreviousTimer(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		loginFn:   okLogin("A1", "R1", 3600),
		refreshFn: okRefresh("A2", "R2", 7200),
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     mock,
	})

	// Two logins in a row leave exactly one armed timer behind.
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))

	mock.Add(3570 * time.Second)
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 1, refreshes)
}

func TestRefreshNeverFiresSoonerThanTheFloor(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		// Expiring in 10s, the 30s lead would put the timer in the past;
		// it is clamped to 1s out instead.
		loginFn:   okLogin("A1", "R1", 10),
		refreshFn: okRefresh("A2", "R2", 3600),
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     mock,
	})
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))

	mock.Add(999 * time.Millisecond)
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 0, refreshes)
	mock.Add(time.Millisecond)
	_, refreshes, _ = endpoints.counts()
	require.Equal(t, 1, refreshes)
}

func TestRefreshWithoutExpiryDisarmsTimer(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		loginFn: okLogin("A1", "R1", 3600),
		// The refreshed token arrives with no expiry at all.
		refreshFn: okRefresh("A2", "R2", 0),
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     mock,
	})
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))

	refreshed, err := m.Refresh(context.Background())
	require.NoError(t, err)
	require.True(t, refreshed)
	require.True(t, m.State().ExpiresAt.IsZero())

	// The timer armed by the login must not survive the refresh.
	mock.Add(24 * time.Hour)
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 1, refreshes)
}

func TestLogoutDoesNotClobberConcurrentLogin(t *testing.T) {
	gate := make(chan struct{})
	endpoints := &fakeEndpoints{
		loginFn:    okLogin("A2", "R2", 3600),
		logoutGate: gate,
	}
	store := &memStore{}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     clock.NewMock(),
	})
	m.mu.Lock()
	m.accessToken = "A1"
	m.refreshToken = "R1"
	m.authenticated = true
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.Logout(context.Background())
		close(done)
	}()
	// Wait for the logout to be held mid-flight at the server, then log in
	// underneath it.
	require.Eventually(t, func() bool {
		_, _, logouts := endpoints.counts()
		return logouts == 1
	}, time.Second, time.Millisecond)
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))
	close(gate)
	<-done

	state := m.State()
	require.True(t, state.Authenticated)
	require.Equal(t, "A2", state.AccessToken)
	require.Equal(t, "R2", state.RefreshToken)
	store.mu.Lock()
	require.NotNil(t, store.persisted)
	require.Equal(t, "A2", store.persisted.AccessToken)
	store.mu.Unlock()
}

func TestNoTimerWhenExpiryIsUnknown(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		loginFn: okLogin("A1", "R1", 0),
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     mock,
	})
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))

	state := m.State()
	require.True(t, state.Authenticated)
	require.True(t, state.ExpiresAt.IsZero())

	mock.Add(24 * time.Hour)
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 0, refreshes)
}

func TestInitResumesIntactSession(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		refreshFn: okRefresh("A2", "R2", 3600),
	}
	store := &memStore{
		persisted: &PersistedSession{
			User:            &sdk.User{Name: "Alice", Email: "alice@example.com"},
			AccessToken:     "A1",
			RefreshToken:    "R1",
			IsAuthenticated: true,
			ExpiresAt:       mock.Now().Add(time.Hour).UnixMilli(),
		},
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     mock,
	})

	require.NoError(t, m.Init(context.Background()))

	state := m.State()
	require.True(t, state.Authenticated)
	require.Equal(t, "A1", state.AccessToken)
	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 0, refreshes)

	// And the resumed session still refreshes itself on schedule.
	mock.Add(3570 * time.Second)
	_, refreshes, _ = endpoints.counts()
	require.Equal(t, 1, refreshes)
}

func TestInitRefreshesExpiredSession(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(24 * time.Hour)
	endpoints := &fakeEndpoints{
		refreshFn: okRefresh("A2", "R2", 3600),
	}
	store := &memStore{
		persisted: &PersistedSession{
			User:            &sdk.User{Name: "Alice", Email: "alice@example.com"},
			AccessToken:     "A1",
			RefreshToken:    "R1",
			IsAuthenticated: true,
			ExpiresAt:       mock.Now().Add(-10 * time.Second).UnixMilli(),
		},
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     mock,
	})

	require.NoError(t, m.Init(context.Background()))

	_, refreshes, logouts := endpoints.counts()
	require.Equal(t, 1, refreshes)
	require.Equal(t, 0, logouts)
	state := m.State()
	require.True(t, state.Authenticated)
	require.Equal(t, "A2", state.AccessToken)
	// The persisted profile survives a refresh response that omits the user.
	require.NotNil(t, state.User)
	require.Equal(t, "alice@example.com", state.User.Email)
}

func TestInitTearsDownExpiredSessionWithoutRefreshToken(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(24 * time.Hour)
	endpoints := &fakeEndpoints{}
	store := &memStore{
		persisted: &PersistedSession{
			User:            &sdk.User{Name: "Alice", Email: "alice@example.com"},
			AccessToken:     "A1",
			IsAuthenticated: true,
			ExpiresAt:       mock.Now().Add(-10 * time.Second).UnixMilli(),
		},
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     mock,
	})

	require.NoError(t, m.Init(context.Background()))

	state := m.State()
	require.False(t, state.Authenticated)
	require.Empty(t, state.AccessToken)
	store.mu.Lock()
	require.Nil(t, store.persisted)
	store.mu.Unlock()
}

func TestInitRefreshesPartialSession(t *testing.T) {
	endpoints := &fakeEndpoints{
		refreshFn: func(string) (sdk.AuthResponse, error) {
			return sdk.AuthResponse{
				Success:      true,
				Token:        "A2",
				RefreshToken: "R2",
				ExpiresIn:    3600,
				User:         &sdk.User{Name: "Alice", Email: "alice@example.com"},
			}, nil
		},
	}
	// A token with no user is partial; only the refresh token matters.
	store := &memStore{
		persisted: &PersistedSession{
			AccessToken:  "A1",
			RefreshToken: "R1",
		},
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     store,
		Clock:     clock.NewMock(),
	})

	require.NoError(t, m.Init(context.Background()))

	_, refreshes, _ := endpoints.counts()
	require.Equal(t, 1, refreshes)
	state := m.State()
	require.True(t, state.Authenticated)
	require.Equal(t, "A2", state.AccessToken)
	require.NotNil(t, state.User)
}

func TestInitWithNothingPersistedStaysUnauthenticated(t *testing.T) {
	endpoints := &fakeEndpoints{}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     clock.NewMock(),
	})

	require.NoError(t, m.Init(context.Background()))

	state := m.State()
	require.False(t, state.Authenticated)
	logins, refreshes, logouts := endpoints.counts()
	require.Zero(t, logins)
	require.Zero(t, refreshes)
	require.Zero(t, logouts)
}

// The authenticated flag may never be true without an access token, whatever
// sequence of operations led to the current state.
func TestAuthenticatedImpliesToken(t *testing.T) {
	mock := clock.NewMock()
	endpoints := &fakeEndpoints{
		loginFn: okLogin("A1", "R1", 3600),
		refreshFn: func(string) (sdk.AuthResponse, error) {
			return sdk.AuthResponse{Success: false}, nil
		},
	}
	m := NewManager(ManagerConfig{
		Endpoints: endpoints,
		Store:     &memStore{},
		Clock:     mock,
	})

	check := func() {
		state := m.State()
		if state.Authenticated {
			require.NotEmpty(t, state.AccessToken)
		}
	}

	check()
	require.NoError(t, m.Login(context.Background(), "alice", "correct"))
	check()
	_, _ = m.Refresh(context.Background())
	check()
	m.Logout(context.Background())
	check()
}
