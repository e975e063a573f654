package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements registration, login, and logout for both principal
// kinds. Login mints a signed bearer token and mirrors the principal into
// the session registry and the profile cache; logout undoes all of it.
type AuthService struct {
	repo      ports.AccountRepository
	profiles  ports.ProfileCache
	sessions  *SessionRegistry
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AccountRepository, profiles ports.ProfileCache, sessions *SessionRegistry, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:      repo,
		profiles:  profiles,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a customer or business-owner account. Admin staff
// accounts are provisioned out of band, never through the public surface.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.Principal, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role != domain.RoleCustomer && role != domain.RoleBusinessOwner {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Principal: domain.Principal{
			Name:  name,
			Email: email,
			Role:  role,
		},
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, domain.KindUser, account)
	if err != nil {
		return nil, err
	}
	p := created.Principal
	return &p, nil
}

// Login verifies the password for the given kind, mints a token, and mirrors
// the principal into the registry and profile cache. The returned token is
// what ends up in the authToken/adminToken cookie.
func (s *AuthService) Login(ctx context.Context, kind domain.Kind, email, password string) (string, *domain.Principal, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, kind, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	p := account.Principal
	s.sessions.Put(kind, token, &p)
	s.profiles.Save(ctx, kind, token, &p)

	return token, &p, nil
}

// Logout clears every trace of both principal kinds for the given tokens:
// registry entries and cached profile snapshots. Cookie removal is the
// transport layer's job. Empty tokens are skipped.
func (s *AuthService) Logout(ctx context.Context, userToken, adminToken string) {
	if userToken != "" {
		s.sessions.Delete(domain.KindUser, userToken)
		s.profiles.Clear(ctx, domain.KindUser, userToken)
	}
	if adminToken != "" {
		s.sessions.Delete(domain.KindAdmin, adminToken)
		s.profiles.Clear(ctx, domain.KindAdmin, adminToken)
	}
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  account.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
