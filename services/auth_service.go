package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"
	"github.com/fragisir/foodWebsite/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OTPTTL is how long a password-reset OTP stays valid.
const OTPTTL = 2 * time.Minute

// AuthService handles register/login and the OTP password-reset flow.
type AuthService struct {
	userRepo  *repository.UserRepository
	mailer    utils.Mailer
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, mailer utils.Mailer, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		mailer:    mailer,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(email, password, name, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validationf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "user",
		IsActive:    true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if !user.IsActive {
		return "", nil, fmt.Errorf("%w: account disabled", apperr.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

// ForgotPassword generates a 6-digit OTP, stores it with a 2-minute expiry
// and mails it. Returns ErrNotFound when the email is unknown.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}
	expires := time.Now().Add(OTPTTL)
	if err := s.userRepo.SetResetOTP(user.ID, otp, &expires); err != nil {
		return err
	}

	body := fmt.Sprintf("Your password reset OTP is: %s\nValid for 2 minutes.", otp)
	if err := s.mailer.Send(user.Email, "Password Reset OTP - Foodies", body); err != nil {
		// roll the OTP back so a half-delivered reset cannot linger
		_ = s.userRepo.SetResetOTP(user.ID, "", nil)
		return errors.New("email could not be sent")
	}
	return nil
}

// VerifyOTP checks the OTP without consuming it.
func (s *AuthService) VerifyOTP(email, otp string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if otp == "" {
		return apperr.Validationf("otp is required")
	}
	if _, err := s.userRepo.FindByEmailAndOTP(email, otp); err != nil {
		return apperr.Validationf("invalid or expired OTP")
	}
	return nil
}

// ResetPassword consumes a valid OTP and sets the new password.
func (s *AuthService) ResetPassword(email, otp, newPassword string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(newPassword) < 6 {
		return "", nil, apperr.Validationf("password must be at least 6 characters")
	}

	user, err := s.userRepo.FindByEmailAndOTP(email, otp)
	if err != nil {
		return "", nil, apperr.Validationf("invalid or expired OTP")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, errors.New("hash password failed")
	}

	if err := s.userRepo.Update(user.ID, map[string]any{
		"password":             string(hashed),
		"reset_otp":            "",
		"reset_otp_expires_at": nil,
	}); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
