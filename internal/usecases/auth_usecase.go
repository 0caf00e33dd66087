package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/domain/repositories"
	"tradedesk.backend/pkg/crypto"
	"tradedesk.backend/pkg/jwt"
	"tradedesk.backend/pkg/redis"
	"tradedesk.backend/pkg/utils"
)

// MsgEmailRegistered is returned when sign-up hits an existing email
const MsgEmailRegistered = "This email is already registered."

// SessionStore keeps the signed-in account server side
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var newSessionID = func() string { return uuid.NewString() }

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	accountRepo repositories.AccountRepository
	hasher      *crypto.Hasher
	jwtService  *jwt.JWTService
	sessions    SessionStore
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil, in which case
// useSession logins are refused.
func NewAuthUsecase(
	accountRepo repositories.AccountRepository,
	hasher *crypto.Hasher,
	jwtService *jwt.JWTService,
	sessions SessionStore,
) *AuthUsecase {
	return &AuthUsecase{
		accountRepo: accountRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		sessions:    sessions,
	}
}

// Register creates an account. The first account becomes ADMIN.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.Account, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	email := entities.NormalizeEmail(input.Email)
	_, err := u.accountRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict(MsgEmailRegistered)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := entities.AccountRoleStaff
	count, err := u.accountRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = entities.AccountRoleAdmin
	}

	account := &entities.Account{
		ID:           utils.GenerateUUIDv7(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Theme:        entities.ThemeDark,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(MsgEmailRegistered)
		}
		return nil, err
	}
	return account, nil
}

// Login authenticates an account and returns tokens. With UseSession the tokens are
// also stored in an encrypted session whose id is returned.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	account, err := u.accountRepo.GetByEmail(ctx, entities.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		Account:      account,
	}
	if !input.UseSession {
		return resp, nil
	}
	if u.sessions == nil {
		return nil, domainerrors.BadRequest("Sessions are not enabled")
	}

	sessionID := newSessionID()
	err = u.sessions.CreateSession(ctx, sessionID, &redis.SessionData{
		AccountID:    account.ID.String(),
		Email:        account.Email,
		Role:         string(account.Role),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		CreatedAt:    timeNow(),
	}, u.jwtService.RefreshExpiry())
	if err != nil {
		return nil, err
	}
	resp.SessionID = sessionID
	return resp, nil
}

// Logout drops the session, if any. Stateless JWTs simply expire.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessions == nil {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// ResolveSession returns the access token held by a session
func (u *AuthUsecase) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	if u.sessions == nil {
		return "", domainerrors.ErrUnauthorized
	}
	data, err := u.sessions.GetSession(ctx, sessionID)
	if err != nil || data == nil {
		return "", domainerrors.ErrUnauthorized
	}
	return data.AccessToken, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateKind(refreshToken, jwt.KindRefresh)
	if err != nil {
		return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "Invalid or expired refresh token", err)
	}

	// The account must still exist.
	account, err := u.accountRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Account no longer exists")
		}
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(account.ID, account.Email, string(account.Role))
}

// GetAccountByID gets an account by ID
func (u *AuthUsecase) GetAccountByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	return u.accountRepo.GetByID(ctx, id)
}
