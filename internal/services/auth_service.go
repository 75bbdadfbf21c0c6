package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripgenius/internal/models/db_models"
	"tripgenius/internal/models/request_models"
	"tripgenius/internal/models/response_models"
	"tripgenius/internal/repositories"
	"tripgenius/pkg/utils"
)

const minPasswordLength = 6

// SecretHasher isolates credential storage and comparison so the
// scheme can be swapped without touching the auth flows.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Compare(hash string, secret string) error
}

type AuthServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.UserResponse, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*response_models.UserResponse, error)
}

type AuthService struct {
	userRepo       repositories.UserRepository
	sessionService SessionServiceInterface
	hasher         SecretHasher
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionService SessionServiceInterface,
	hasher SecretHasher,
) AuthServiceInterface {
	return &AuthService{
		userRepo:       userRepo,
		sessionService: sessionService,
		hasher:         hasher,
	}
}

func (a *AuthService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, string, error) {
	if request.Name == "" || request.Email == "" || request.Password == "" {
		return nil, "", fmt.Errorf("%w: name, email, and password are required", utils.ErrValidation)
	}
	if len(request.Password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters long", utils.ErrValidation, minPasswordLength)
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrInternal
	}
	if existing != nil {
		return nil, "", utils.ErrEmailAlreadyExists
	}

	secretHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		return nil, "", utils.ErrInternal
	}

	user, err := a.userRepo.Insert(ctx, &db_models.User{
		Name:       request.Name,
		Email:      request.Email,
		SecretHash: secretHash,
		Avatar:     utils.AvatarURL(request.Email),
		JoinDate:   time.Now().UTC().Format(time.RFC3339),
		TripCount:  0,
	})
	if err != nil {
		return nil, "", utils.ErrInternal
	}

	token, err := a.sessionService.Create(ctx, user.ID)
	if err != nil {
		return nil, "", utils.ErrInternal
	}

	log.Printf("User created: id=%s email=%s", user.ID, user.Email)

	return response_models.ToUserResponse(user), token, nil
}

// Login checks credentials and mints a fresh session. Unknown email
// and wrong password fail identically so the response does not leak
// which part was wrong. Prior sessions stay valid.
func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.UserResponse, string, error) {
	if request.Email == "" || request.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", utils.ErrValidation)
	}

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrInternal
	}
	if user == nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	if err := a.hasher.Compare(user.SecretHash, request.Password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := a.sessionService.Create(ctx, user.ID)
	if err != nil {
		return nil, "", utils.ErrInternal
	}

	return response_models.ToUserResponse(user), token, nil
}

// Logout revokes the token. Always succeeds, even for tokens that are
// unknown or already revoked.
func (a *AuthService) Logout(ctx context.Context, token string) error {
	return a.sessionService.Revoke(ctx, token)
}

func (a *AuthService) CurrentUser(ctx context.Context, token string) (*response_models.UserResponse, error) {
	userID, err := a.sessionService.Validate(ctx, token)
	if err != nil {
		log.Printf("Session rejected: %v", err)
		return nil, fmt.Errorf("%w: %w", utils.ErrUnauthenticated, err)
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrInternal
	}
	if user == nil {
		// Orphaned session: the bound user no longer resolves.
		return nil, utils.ErrUserNotFound
	}

	return response_models.ToUserResponse(user), nil
}
