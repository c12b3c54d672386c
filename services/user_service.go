package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/models"
	"github.com/Calorties/calorties-api/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	images ImageUploader
}

func NewUserService(db *gorm.DB, images ImageUploader) *UserService {
	return &UserService{db: db, images: images}
}

type CreateUserInput struct {
	Birthdate   time.Time
	Gender      string
	TinggiBadan float64 // cm
	BeratBadan  float64 // kg
}

type UpdateUserInput struct {
	Nama        string
	Email       string
	Username    string
	Password    string
	Birthdate   time.Time
	Gender      string
	TinggiBadan float64
	BeratBadan  float64
}

// accounts carries unique indexes on username and email; a duplicate-key
// failure on save means another account already holds the new value.
func saveAccountError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflict("username or email already registered", err)
	}
	return apperror.NewDatabase("failed to update account", err)
}

func validGender(g string) bool {
	switch g {
	case "", models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	}
	return false
}

// CreateUser creates the biometric profile for an account. Name and email
// are copied from the account; one profile per account.
func (s *UserService) CreateUser(ctx context.Context, acct *models.Account, in CreateUserInput) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("account_id = ?", acct.ID).First(&existing).Error
	if err == nil {
		return nil, apperror.NewConflict("user already registered", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewDatabase("failed to check existing user", err)
	}
	if !validGender(in.Gender) {
		return nil, apperror.NewBadRequest("gender must be Male, Female or Other", nil)
	}

	user := models.User{
		AccountID:   acct.ID,
		Nama:        acct.Nama,
		Email:       acct.Email,
		Birthdate:   in.Birthdate,
		Gender:      in.Gender,
		TinggiBadan: in.TinggiBadan,
		BeratBadan:  in.BeratBadan,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, apperror.NewDatabase("failed to create user", err)
	}
	return &user, nil
}

// UpdateUser applies a partial profile update with explicit field mapping.
// Username, email, nama and password changes propagate to the Account row.
// A target id pointing at another account's user is Forbidden.
func (s *UserService) UpdateUser(ctx context.Context, acct *models.Account, targetUserID uint, in UpdateUserInput) error {
	var user models.User
	err := s.db.WithContext(ctx).Where("account_id = ?", acct.ID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFound("user not found", err)
		}
		return apperror.NewDatabase("failed to load user", err)
	}
	if targetUserID != 0 && targetUserID != user.ID {
		return apperror.NewForbidden("not allowed to update this user", nil)
	}
	if !validGender(in.Gender) {
		return apperror.NewBadRequest("gender must be Male, Female or Other", nil)
	}

	if in.Nama != "" {
		user.Nama = in.Nama
		acct.Nama = in.Nama
	}
	if in.Email != "" {
		user.Email = in.Email
		acct.Email = in.Email
	}
	if in.Username != "" {
		acct.Username = in.Username
	}
	if in.Password != "" {
		hashed, err := utils.HashPassword(in.Password)
		if err != nil {
			return apperror.NewInternal("failed to hash password", err)
		}
		acct.Password = hashed
	}
	if !in.Birthdate.IsZero() {
		user.Birthdate = in.Birthdate
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.TinggiBadan > 0 {
		user.TinggiBadan = in.TinggiBadan
	}
	if in.BeratBadan > 0 {
		user.BeratBadan = in.BeratBadan
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return apperror.NewDatabase("failed to update user", err)
	}
	if err := s.db.WithContext(ctx).Save(acct).Error; err != nil {
		return saveAccountError(err)
	}
	return nil
}

// SetProfileImage uploads the image and stores its public URL on the user.
func (s *UserService) SetProfileImage(ctx context.Context, acct *models.Account, image []byte, contentType, filename string) (string, error) {
	if len(image) == 0 {
		return "", apperror.NewBadRequest("no profile image provided", nil)
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("account_id = ?", acct.ID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.NewNotFound("user not found", err)
		}
		return "", apperror.NewDatabase("failed to load user", err)
	}

	key := fmt.Sprintf("profile_image/%d%s", acct.ID, path.Ext(filename))
	url, err := s.images.Upload(ctx, image, contentType, key)
	if err != nil {
		return "", apperror.NewInternal("failed to upload image", err)
	}

	user.ProfileImageURL = url
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return "", apperror.NewDatabase("failed to update user", err)
	}
	return url, nil
}
