// Package session owns the client's authentication state: the signed-in user,
// the loading flag covering initial restore, and the token cache on disk. The
// backend remains the authority; this store only mirrors what it was told.
package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/raith/agroconnect/internal/api"
)

// Snapshot is the read-only view consumers get. User is nil when signed out;
// Loading is true only until Restore has run once.
type Snapshot struct {
	User    *api.User
	Loading bool
}

type Store struct {
	mu      sync.Mutex
	api     *api.Client
	path    string
	user    *api.User
	access  string
	refresh string
	loading bool
}

// NewStore builds a store in the loading state; call Restore before trusting
// Snapshot for access-control decisions.
func NewStore(client *api.Client, path string) *Store {
	return &Store{api: client, path: path, loading: true}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user *api.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return Snapshot{User: user, Loading: s.loading}
}

// Restore loads the persisted session, rejecting expired or unreadable access
// tokens. It always resolves the loading flag, whatever the outcome; a failed
// restore is indistinguishable from never having signed in.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	sf, err := loadSessionFile(s.path)
	if err != nil || sf == nil {
		return
	}
	if tokenExpired(sf.Access) {
		_ = removeSessionFile(s.path)
		return
	}
	user := sf.User
	s.user = &user
	s.access = sf.Access
	s.refresh = sf.Refresh
	s.api.SetToken(sf.Access)
}

// SignIn exchanges credentials for tokens and persists them, mirroring the
// backend's login response as the new session.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := res.User
	s.user = &user
	s.access = res.Access
	s.refresh = res.Refresh
	s.loading = false
	s.api.SetToken(res.Access)
	_ = saveSessionFile(s.path, &sessionFile{Access: res.Access, Refresh: res.Refresh, User: res.User})
	return nil
}

// SignUp registers a new account. The backend does not sign the account in;
// callers follow up with SignIn.
func (s *Store) SignUp(ctx context.Context, in api.RegisterInput) error {
	return s.api.Register(ctx, in)
}

// SignOut drops the session locally. There is no server-side revocation
// endpoint; clearing the cached tokens is the whole operation.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.access = ""
	s.refresh = ""
	s.api.SetToken("")
	_ = removeSessionFile(s.path)
}

// ResetPassword reports success without doing anything: the backend exposes
// no reset endpoint, and the flow deliberately does not reveal whether an
// account exists.
func (s *Store) ResetPassword(ctx context.Context, email string) error {
	_ = ctx
	_ = email
	return nil
}

// RefreshProfile re-reads the profile from the backend. A 401 means the token
// died server-side, so the session is dropped in the same motion.
func (s *Store) RefreshProfile(ctx context.Context) error {
	user, err := s.api.Profile(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			s.SignOut()
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	_ = saveSessionFile(s.path, &sessionFile{Access: s.access, Refresh: s.refresh, User: user})
	return nil
}

func (s *Store) UpdateProfile(ctx context.Context, patch api.ProfileUpdate) error {
	user, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	_ = saveSessionFile(s.path, &sessionFile{Access: s.access, Refresh: s.refresh, User: user})
	return nil
}

func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return s.api.ChangePassword(ctx, oldPassword, newPassword)
}
