package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Emeenent14/omniverse/config"
	"github.com/Emeenent14/omniverse/models"
	"github.com/Emeenent14/omniverse/repositories"
	"github.com/Emeenent14/omniverse/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrResetUnavailable   = errors.New("password reset is currently unavailable")
)

// UserStore is the persistence contract the auth flows depend on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error)
	GetProfile(ctx context.Context, userID int) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
}

type AuthService struct {
	users UserStore
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

func NewAuthServiceWithStore(users UserStore) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	if req.Password != req.Password2 {
		return nil, &models.ValidationError{Field: "password", Message: "Password fields didn't match."}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.users.CreateProfile(ctx, &models.UserProfile{UserID: user.ID}); err != nil {
		return nil, err
	}

	return s.loginResponse(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return s.loginResponse(ctx, user)
}

func (s *AuthService) loginResponse(ctx context.Context, user *models.User) (*models.LoginResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.users.GetUserWithProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *userWithProfile}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	return s.users.GetUserWithProfile(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) (*models.UserWithProfile, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Bio = req.Bio
	profile.Location = req.Location

	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return s.users.GetUserWithProfile(ctx, userID)
}

func (s *AuthService) UpdateAvatar(ctx context.Context, userID int, avatarURL string) error {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if profile.AvatarURL != "" {
		utils.DeleteFile(profile.AvatarURL)
	}

	profile.AvatarURL = avatarURL
	return s.users.UpdateProfile(ctx, profile)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int, req models.ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return &models.ValidationError{Field: "old_password", Message: "Old password is incorrect."}
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hashedPassword)
}

const otpTTL = 10 * time.Minute

func otpKey(email string) string {
	return "pwreset:" + email
}

// ForgotPassword emails a one-time code to the account holder. Unknown
// addresses succeed silently so the endpoint cannot be used to probe which
// emails are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if config.RedisClient == nil {
		return ErrResetUnavailable
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil
	}

	mailer, err := NewEmailService()
	if err != nil {
		return ErrResetUnavailable
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	if err := config.RedisClient.Set(ctx, otpKey(user.Email), otp, otpTTL).Err(); err != nil {
		return err
	}
	return mailer.SendOTPEmail(user.Email, otp)
}

func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if config.RedisClient == nil {
		return ErrResetUnavailable
	}

	stored, err := config.RedisClient.Get(ctx, otpKey(req.Email)).Result()
	if err != nil || stored != req.OTP {
		return ErrInvalidOTP
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return ErrInvalidOTP
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	config.RedisClient.Del(ctx, otpKey(req.Email))
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
