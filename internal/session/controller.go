// Package session drives the sign-in lifecycle: it reacts to identity
// events, loads or seeds the aggregate on login, and discards it on logout.
package session

import (
	"context"
	"sync"

	"github.com/chayilhub/chayil/internal/domain"
	"github.com/chayilhub/chayil/internal/identity"
	"github.com/chayilhub/chayil/internal/persist"
	"github.com/chayilhub/chayil/internal/store"
)

// State is the lifecycle position: Initializing → SignedOut ⇄ SignedIn.
// The machine has no terminal state; it cycles for the process lifetime.
type State string

const (
	StateInitializing State = "initializing"
	StateSignedOut    State = "signed_out"
	StateSignedIn     State = "signed_in"
)

// Controller owns the lifecycle state machine and the per-session store.
type Controller struct {
	provider  identity.Provider
	adapter   persist.Adapter
	storeOpts []store.Option

	mu      sync.Mutex
	state   State
	session *identity.Session
	store   *store.Store
}

// Option configures a Controller.
type Option func(*Controller)

// WithStoreOptions forwards options to every store the controller creates.
func WithStoreOptions(opts ...store.Option) Option {
	return func(c *Controller) {
		c.storeOpts = opts
	}
}

// NewController creates a Controller in the Initializing state.
func NewController(provider identity.Provider, adapter persist.Adapter, opts ...Option) *Controller {
	c := &Controller{
		provider: provider,
		adapter:  adapter,
		state:    StateInitializing,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start performs the current-session check. A resolvable token transitions
// to SignedIn; anything else (no token, expired session, provider outage)
// lands in SignedOut.
func (c *Controller) Start(ctx context.Context, accessToken string) {
	sess, err := c.provider.CurrentUser(ctx, accessToken)
	if err != nil || sess == nil {
		c.enterSignedOut()
		return
	}
	c.enterSignedIn(ctx, sess)
}

// SignIn authenticates with email and password. On success the controller
// enters SignedIn; an AuthError is returned verbatim and the machine stays
// SignedOut.
func (c *Controller) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	sess, err := c.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		c.enterSignedOut()
		return nil, err
	}
	c.enterSignedIn(ctx, sess)
	return sess, nil
}

// SignUp registers a new account. The machine stays SignedOut until the
// email is verified and a sign-in succeeds.
func (c *Controller) SignUp(ctx context.Context, email, password, displayName string) error {
	return c.provider.SignUp(ctx, email, password, displayName)
}

// SignOut invalidates the provider session and discards the in-memory
// aggregate. Persisted storage is untouched; provider errors do not keep
// the user signed in.
func (c *Controller) SignOut(ctx context.Context) {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()

	if sess != nil {
		_ = c.provider.SignOut(ctx, sess.AccessToken)
	}
	c.enterSignedOut()
}

// HandleSessionChange feeds an externally observed identity event into the
// machine: a session enters SignedIn, nil enters SignedOut.
func (c *Controller) HandleSessionChange(ctx context.Context, sess *identity.Session) {
	if sess == nil {
		c.enterSignedOut()
		return
	}
	c.enterSignedIn(ctx, sess)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the signed-in identity, or nil.
func (c *Controller) Session() *identity.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Store returns the live store, or nil when no user is signed in.
func (c *Controller) Store() *store.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store
}

// enterSignedIn loads the user's aggregate (seeding defaults when absent or
// unreadable) and always assigns a fresh daily affirmation — the draw is
// session-scoped and never read back from storage.
func (c *Controller) enterSignedIn(ctx context.Context, sess *identity.Session) {
	c.mu.Lock()
	if c.state == StateSignedIn && c.session != nil && c.session.UserID == sess.UserID {
		// Re-fired auth event for the same user; keep the live aggregate.
		c.session = sess
		c.mu.Unlock()
		return
	}
	old := c.store
	c.mu.Unlock()

	if old != nil {
		old.Close()
	}

	st := store.New(c.adapter, sess.UserID, c.storeOpts...)

	var state domain.PlannerState
	loaded, err := c.adapter.Load(ctx, sess.UserID)
	if err == nil {
		state = *loaded
	} else {
		// Absent, corrupt, or unavailable storage all behave as first-run:
		// availability over durability.
		state = domain.NewSeedState(sess.DisplayName)
	}
	state.DailyAffirmation = domain.RandomAffirmation()
	st.Initialize(state)

	c.mu.Lock()
	c.state = StateSignedIn
	c.session = sess
	c.store = st
	c.mu.Unlock()
}

func (c *Controller) enterSignedOut() {
	c.mu.Lock()
	st := c.store
	c.state = StateSignedOut
	c.session = nil
	c.store = nil
	c.mu.Unlock()

	if st != nil {
		st.Reset()
		st.Close()
	}
}
