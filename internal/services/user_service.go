package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"festa/internal/apperrors"
	"festa/internal/helpers"
	"festa/internal/models"
)

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret []byte
}

func NewUserService(userRepo models.UserRepo, jwtSecret []byte) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (us *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := models.Validate.Struct(user); err != nil {
		return nil, apperrors.Validation("invalid user data: " + err.Error())
	}
	if !helpers.IsPasswordStrong(user.Password) {
		return nil, apperrors.Validation("password must be at least 8 characters with upper, lower, digit and special characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.PasswordHash = string(hash)
	user.Password = ""
	if user.Role == "" {
		user.Role = "user"
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	return us.userRepo.CreateUser(ctx, user)
}

// AuthenticateUser verifies credentials and returns the user plus a signed
// access token.
func (us *UserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, "", apperrors.Validation("invalid email format")
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, "", apperrors.Validation("invalid password format")
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.CodeNotFound) {
			return nil, "", apperrors.Unauthorized("invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized("invalid email or password")
	}

	token, err := helpers.IssueToken(us.jwtSecret, user)
	if err != nil {
		return nil, "", apperrors.Internal("failed to issue token", err)
	}
	return user, token, nil
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("invalid user ID")
	}
	return us.userRepo.GetUserByID(ctx, id)
}

func (us *UserService) UpdateUser(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.User, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("invalid user ID")
	}

	// Credentials never go through the generic update path.
	delete(updates, "password")
	delete(updates, "password_hash")
	delete(updates, "email")
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	return us.userRepo.UpdateUser(ctx, id, updates)
}

func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperrors.Validation("invalid user ID")
	}
	return us.userRepo.DeleteUser(ctx, id)
}
