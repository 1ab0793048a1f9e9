package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"github.com/yukikurage/hiring-platform-api/internal/constants"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/repository"
	"github.com/yukikurage/hiring-platform-api/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	denylist security.Denylist
	google   security.GoogleVerifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	tokens security.TokenManager,
	denylist security.Denylist,
	google security.GoogleVerifier,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		denylist: denylist,
		google:   google,
	}
}

var compareHash = bcrypt.CompareHashAndPassword

// dummyHash is compared against when the email is unknown so both login
// failures cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
})

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  *models.User
	Token string
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	Role      models.Role
}

// Register creates a new user and issues a session token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	role := input.Role
	if role == "" {
		role = models.RoleCandidate
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if role == models.RoleAdmin {
		return nil, ErrAdminSelfAssign
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(user)
}

// Login verifies credentials and returns the authenticated user with a fresh token.
// Unknown email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = compareHash(dummyHash(), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := compareHash([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// GoogleSignIn exchanges a Google ID token for a session token. An unknown
// email gets a verified RECRUITER account with no usable password.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (*AuthResult, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, ErrGoogleCredentialRequired
	}
	if s.google == nil {
		return nil, ErrGoogleSignInDisabled
	}

	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		if errors.Is(err, security.ErrGoogleSignInDisabled) {
			return nil, ErrGoogleSignInDisabled
		}
		return nil, ErrInvalidGoogleToken
	}
	email := strings.TrimSpace(identity.Email)
	if email == "" || !identity.EmailVerified {
		return nil, ErrInvalidGoogleToken
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return s.issue(user)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	unusable, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()+shortuuid.New()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user = &models.User{
		Email:        email,
		PasswordHash: string(unusable),
		FirstName:    optional(identity.FirstName),
		LastName:     optional(identity.LastName),
		Role:         models.RoleRecruiter,
		Verified:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// Lost a race with a concurrent sign-in for the same email.
		if user, err = s.userRepo.FindByEmail(ctx, email); err != nil {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
	}
	return s.issue(user)
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Verify checks a token and returns its claims. It has no side effects.
func (s *AuthService) Verify(token string) (*security.UserClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolvePrincipal verifies the token and loads the current user behind it.
// Role and organization come from the store, never from the token.
func (s *AuthService) ResolvePrincipal(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token: %w", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	p := PrincipalFromUser(user)
	return &p, nil
}

// Logout revokes the token until it expires. Invalid tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
