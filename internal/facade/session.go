package facade

import (
	"context"

	"github.com/gechostel/hosteldesk/internal/domain"
)

// Session lifecycle. Two states: anonymous and authenticated. Login and
// signup move to authenticated and persist token plus user snapshot as
// the last step of the call, in one transaction. A profile refresh
// replaces the snapshot only. Logout clears both together. An expired
// token surfaces as an auth error on the next call; there is no silent
// re-authentication.

// Signup registers a new account and starts a session.
func (f *Facade) Signup(ctx context.Context, in domain.SignupInput) (*domain.User, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	session, err := f.backend.Signup(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := f.beginSession(session); err != nil {
		return nil, err
	}
	f.logger.Info("signed up", "email", session.User.Email)
	return &session.User, nil
}

// Login authenticates and starts a session.
func (f *Facade) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	session, err := f.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := f.beginSession(session); err != nil {
		return nil, err
	}
	f.logger.Info("logged in", "email", session.User.Email, "role", session.User.Role)
	return &session.User, nil
}

// LoginAdmin authenticates against the admin surface. A successful login
// by a non-admin account is rejected and the session torn down again.
func (f *Facade) LoginAdmin(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := f.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleAdmin {
		f.Logout()
		return nil, domain.NewServerError(403, "Access denied. Admin role required.")
	}
	return user, nil
}

// beginSession installs the session in memory and on the backend client,
// then persists it as the final step of the triggering call.
func (f *Facade) beginSession(session *domain.Session) error {
	f.mu.Lock()
	f.session = session
	f.mu.Unlock()
	f.backend.SetToken(session.Token)
	return f.cache.SaveSession(session)
}

// Logout clears the session: token and user snapshot are removed together.
func (f *Facade) Logout() {
	f.mu.Lock()
	f.session = nil
	f.mu.Unlock()
	f.backend.SetToken("")
	if err := f.cache.ClearSession(); err != nil {
		f.logger.Warn("failed to clear session slot", "error", err)
	}
	f.logger.Info("logged out")
}

// CurrentUser returns the cached snapshot of the logged-in user, or nil
// when anonymous.
func (f *Facade) CurrentUser() *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return nil
	}
	user := f.session.User
	return &user
}

// Token returns the current bearer token, or empty when anonymous.
func (f *Facade) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return ""
	}
	return f.session.Token
}

// GetProfile returns the current user's profile. Online, a successful
// fetch replaces the cached snapshot (token unchanged); otherwise the
// snapshot is served as-is.
func (f *Facade) GetProfile(ctx context.Context) *domain.User {
	if DecideSource(f.monitor.IsAvailable(ctx)) == SourceRemote {
		user, err := f.backend.GetProfile(ctx)
		if err == nil {
			f.refreshSnapshot(*user)
			return user
		}
		f.logger.Warn("profile refresh failed, serving snapshot", "error", err)
	}
	return f.CurrentUser()
}

// UpdateProfile writes the mutable profile fields to the server, then
// refreshes the cached snapshot with the confirmed result.
func (f *Facade) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	if err := f.requireBackend(ctx); err != nil {
		return nil, err
	}
	user, err := f.backend.UpdateProfile(ctx, in)
	if err != nil {
		return nil, err
	}
	f.refreshSnapshot(*user)
	return user, nil
}

// refreshSnapshot replaces the session's user snapshot after a confirmed
// server read or write. No-op when anonymous.
func (f *Facade) refreshSnapshot(user domain.User) {
	f.mu.Lock()
	if f.session == nil {
		f.mu.Unlock()
		return
	}
	f.session.User = user
	session := *f.session
	f.mu.Unlock()

	if err := f.cache.SaveSession(&session); err != nil {
		f.logger.Warn("failed to persist session snapshot", "error", err)
	}
}
