package services

import (
	"context"
	"errors"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/models"
	"github.com/Calorties/calorties-api/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenIssuer
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates a new account. Username and email must both be unused.
func (s *AuthService) Register(ctx context.Context, nama, username, email, password string) error {
	var existing models.Account
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&existing).Error
	if err == nil {
		return apperror.NewConflict("username or email already registered", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewDatabase("failed to check existing account", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}

	account := models.Account{
		Nama:     nama,
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		// the pre-check above races with concurrent registrations; the
		// unique indexes are the authority
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.NewConflict("username or email already registered", err)
		}
		return apperror.NewDatabase("failed to create account", err)
	}
	return nil
}

// Login verifies credentials and issues a session token. An unknown username
// is NotFound; a wrong password is an authentication failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.NewNotFound("username not found", err)
		}
		return "", apperror.NewDatabase("failed to load account", err)
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return "", apperror.NewAuth("incorrect password", nil)
	}

	token, err := s.tokens.Issue(account.Username)
	if err != nil {
		return "", apperror.NewInternal("failed to issue token", err)
	}
	return token, nil
}
