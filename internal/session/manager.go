package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/louisbranch/plaza/internal/errors"
	"github.com/louisbranch/plaza/internal/remote"
	"github.com/louisbranch/plaza/internal/social/domain"
	"github.com/louisbranch/plaza/internal/social/store"
)

var (
	// ErrInvalidCredentials indicates no user matched the identifier and
	// secret pair.
	ErrInvalidCredentials = errors.WithCode(stderrors.New("credentials do not match"), errors.CodeInvalidCredentials)
	// ErrAccountDeactivated indicates the matched account is deactivated.
	ErrAccountDeactivated = errors.WithCode(stderrors.New("account is deactivated"), errors.CodeAccountDeactivated)
	// ErrEmailNotVerified indicates the matched account has not verified its
	// email yet.
	ErrEmailNotVerified = errors.WithCode(stderrors.New("email is not verified"), errors.CodeEmailNotVerified)
	// ErrDuplicateUsername indicates another user already holds the name,
	// compared case-insensitively.
	ErrDuplicateUsername = errors.WithCode(stderrors.New("username already taken"), errors.CodeDuplicateUsername)
	// ErrNotAuthenticated indicates the operation needs an authenticated
	// session.
	ErrNotAuthenticated = stderrors.New("not authenticated")
)

// Options configures a Manager.
type Options struct {
	// Secret signs durable session records. Required.
	Secret []byte
	// LoginByName switches the login identifier from account email to user
	// name.
	LoginByName bool
	Clock       func() time.Time
	Logger      zerolog.Logger
}

// Manager owns the session state machine: Anonymous, then Authenticated
// after login, back to Anonymous on logout. It holds only the current user
// id; the user record itself always resolves fresh against the entity store.
type Manager struct {
	store     *store.Store
	remote    remote.Service
	durable   Tier
	ephemeral Tier
	opts      Options

	mu            sync.Mutex
	currentUserID string
}

// NewManager builds a session manager over the given store, remote service
// and persistence tiers.
func NewManager(entities *store.Store, svc remote.Service, durable, ephemeral Tier, opts Options) *Manager {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Manager{
		store:     entities,
		remote:    svc,
		durable:   durable,
		ephemeral: ephemeral,
		opts:      opts,
	}
}

// CurrentUser resolves the active session against the entity store. The
// second return is false while the session is anonymous.
func (m *Manager) CurrentUser() (domain.User, bool) {
	m.mu.Lock()
	userID := m.currentUserID
	m.mu.Unlock()
	if userID == "" {
		return domain.User{}, false
	}
	user, err := m.store.User(userID)
	if err != nil {
		return domain.User{}, false
	}
	return user, true
}

// Login matches identifier and secret against the canonical users. On
// success the session id is persisted in the durable tier when remember is
// set, otherwise in the ephemeral tier; the other tier is cleared so the two
// stay mutually exclusive. Nothing is written on failure.
func (m *Manager) Login(ctx context.Context, identifier, secret string, remember bool) (domain.User, error) {
	matched, found := m.findByIdentifier(identifier)
	if !found || !matched.CredentialMatches(secret) {
		return domain.User{}, ErrInvalidCredentials
	}
	if !matched.IsActive {
		return domain.User{}, ErrAccountDeactivated
	}
	if !matched.IsVerified {
		return domain.User{}, ErrEmailNotVerified
	}

	if err := m.persistSession(ctx, matched.ID, remember); err != nil {
		return domain.User{}, err
	}
	m.setCurrent(matched.ID)
	m.opts.Logger.Info().Str("user_id", matched.ID).Bool("remember", remember).Msg("session established")
	return matched, nil
}

// Register checks the requested name locally, creates the account on the
// remote service, and records the canonical user with the hashed credential.
// The session stays anonymous until the email is verified.
func (m *Manager) Register(ctx context.Context, name, email, secret string) (domain.User, error) {
	trimmedName := strings.TrimSpace(name)
	for _, user := range m.store.Users() {
		if strings.EqualFold(user.Name, trimmedName) {
			return domain.User{}, ErrDuplicateUsername
		}
	}

	created, err := m.remote.Register(ctx, remote.RegisterInput{
		Name:     trimmedName,
		Email:    email,
		Password: secret,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("register account: %w", err)
	}

	hash, err := domain.HashCredential(secret)
	if err != nil {
		return domain.User{}, err
	}
	created.PasswordHash = hash
	if created.Settings.Account.Email == "" {
		created.Settings = domain.DefaultSettings(email)
	}
	m.store.UpsertUser(created)
	m.opts.Logger.Info().Str("user_id", created.ID).Msg("account registered")
	return created, nil
}

// VerifyEmail flips the verification flag and promotes the session to
// authenticated with durable persistence.
func (m *Manager) VerifyEmail(ctx context.Context, userID string) (domain.User, error) {
	user, err := m.store.User(userID)
	if err != nil {
		return domain.User{}, err
	}
	user.IsVerified = true
	m.store.UpsertUser(user)

	if err := m.persistSession(ctx, user.ID, true); err != nil {
		return domain.User{}, err
	}
	m.setCurrent(user.ID)
	return user, nil
}

// RestoreSession runs once at process start. It reads a candidate id from
// the durable tier, falling back to the ephemeral tier, and accepts the
// session only if the resolved user exists, is active, and still has a
// credential on record. Persisted data can be corrupted or partially
// written, so any failure clears both tiers and leaves the session
// anonymous.
func (m *Manager) RestoreSession(ctx context.Context) (domain.User, bool) {
	candidateID, err := m.candidateID(ctx)
	if err != nil {
		if !stderrors.Is(err, ErrNoRecord) {
			m.opts.Logger.Warn().Err(err).Msg("session record rejected")
			m.clearTiers(ctx)
		}
		return domain.User{}, false
	}

	user, err := m.store.User(candidateID)
	if err != nil || !user.IsActive || user.PasswordHash == "" {
		m.opts.Logger.Warn().Str("user_id", candidateID).Msg("persisted session failed validity check")
		m.clearTiers(ctx)
		return domain.User{}, false
	}

	m.setCurrent(user.ID)
	m.opts.Logger.Info().Str("user_id", user.ID).Msg("session restored")
	return user, true
}

// Logout clears both tiers and returns the session to anonymous.
func (m *Manager) Logout(ctx context.Context) {
	m.clearTiers(ctx)
	m.setCurrent("")
}

func (m *Manager) findByIdentifier(identifier string) (domain.User, bool) {
	for _, user := range m.store.Users() {
		if m.opts.LoginByName {
			if strings.EqualFold(user.Name, identifier) {
				return user, true
			}
			continue
		}
		if user.Settings.Account.Email == identifier {
			return user, true
		}
	}
	return domain.User{}, false
}

func (m *Manager) candidateID(ctx context.Context) (string, error) {
	record, err := m.durable.Read(ctx)
	if err == nil {
		userID, parseErr := parseRecord(m.opts.Secret, record)
		if parseErr != nil {
			return "", parseErr
		}
		return userID, nil
	}
	if !stderrors.Is(err, ErrNoRecord) {
		return "", err
	}

	userID, err := m.ephemeral.Read(ctx)
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", fmt.Errorf("empty ephemeral session record")
	}
	return userID, nil
}

func (m *Manager) persistSession(ctx context.Context, userID string, remember bool) error {
	if remember {
		record, err := signRecord(m.opts.Secret, userID, m.opts.Clock())
		if err != nil {
			return err
		}
		if err := m.durable.Write(ctx, record); err != nil {
			return err
		}
		return m.ephemeral.Clear(ctx)
	}
	if err := m.ephemeral.Write(ctx, userID); err != nil {
		return err
	}
	return m.durable.Clear(ctx)
}

func (m *Manager) clearTiers(ctx context.Context) {
	if err := m.durable.Clear(ctx); err != nil {
		m.opts.Logger.Warn().Err(err).Msg("clear durable session tier")
	}
	if err := m.ephemeral.Clear(ctx); err != nil {
		m.opts.Logger.Warn().Err(err).Msg("clear ephemeral session tier")
	}
}

func (m *Manager) setCurrent(userID string) {
	m.mu.Lock()
	m.currentUserID = userID
	m.mu.Unlock()
}
