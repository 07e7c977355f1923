package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// AuthService implements registration, login and the role-elevation guard.
type AuthService struct {
	repo     ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, logger: logger}
}

// Register creates a new account. Accounts always start with the public role;
// elevation happens only through ChangeRole.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RolePublic,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("uid", created.UID).Msg("account registered")
	return created, nil
}

// Login verifies credentials and issues a session credential carrying the
// stored role as a claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	credential, err := s.sessions.Issue(domain.Identity{UID: user.UID, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	return credential, user, nil
}

// Logout revokes all outstanding credentials for the user.
func (s *AuthService) Logout(ctx context.Context, uid string) error {
	return s.sessions.Revoke(ctx, uid)
}

// ChangeRole sets targetUID's stored role. Only an admin actor may change a
// role, and only premium or admin may be assigned. The change takes effect on
// the target's next credential issuance: outstanding sessions keep the role
// they were issued with.
func (s *AuthService) ChangeRole(ctx context.Context, actor domain.Identity, targetUID, role string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if !domain.AssignableRole(role) {
		return domain.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, targetUID, role); err != nil {
		return err
	}

	s.logger.Info().
		Str("actor_uid", actor.UID).
		Str("target_uid", targetUID).
		Str("role", role).
		Msg("role changed")
	return nil
}
