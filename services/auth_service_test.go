package services

import (
	"errors"
	"testing"
	"time"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"
	"github.com/fragisir/foodWebsite/utils"

	"gorm.io/gorm"
)

type captureMailer struct {
	to, subject, body string
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func newAuthService(db *gorm.DB, mailer utils.Mailer) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), mailer, "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db, &captureMailer{})

	user, err := svc.Register("Alice@Test.com", "secret1", "Alice", "555-0100")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "alice@test.com" {
		t.Errorf("email = %q, want normalized lowercase", user.Email)
	}
	if user.Role != "user" {
		t.Errorf("role = %q, want user", user.Role)
	}

	token, _, err := svc.Login("alice@test.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := utils.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != "user" {
		t.Errorf("claims = %+v, want userId=%d role=user", claims, user.ID)
	}

	if _, _, err := svc.Login("alice@test.com", "wrong"); err == nil {
		t.Error("login with wrong password succeeded")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db, &captureMailer{})

	if _, err := svc.Register("a@test.com", "secret1", "A", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register("a@test.com", "secret2", "B", ""); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestDisabledAccountCannotLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db, &captureMailer{})

	user, _ := svc.Register("a@test.com", "secret1", "A", "")
	db.Model(&entity.User{}).Where("id = ?", user.ID).Update("is_active", false)

	if _, _, err := svc.Login("a@test.com", "secret1"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestOTPResetFlow(t *testing.T) {
	db := setupTestDB(t)
	mail := &captureMailer{}
	svc := newAuthService(db, mail)

	svc.Register("a@test.com", "oldpass", "A", "")

	if err := svc.ForgotPassword("a@test.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}
	if mail.to != "a@test.com" {
		t.Fatalf("mail sent to %q", mail.to)
	}

	var user entity.User
	db.Where("email = ?", "a@test.com").First(&user)
	if len(user.ResetOTP) != 6 {
		t.Fatalf("otp = %q, want 6 digits", user.ResetOTP)
	}

	if err := svc.VerifyOTP("a@test.com", user.ResetOTP); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := svc.VerifyOTP("a@test.com", "000000"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("wrong otp: err = %v, want ErrValidation", err)
	}

	token, _, err := svc.ResetPassword("a@test.com", user.ResetOTP, "newpass")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if token == "" {
		t.Error("no token issued after reset")
	}

	// OTP consumed: same code cannot be replayed
	if _, _, err := svc.ResetPassword("a@test.com", user.ResetOTP, "anotherpass"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("replayed otp: err = %v, want ErrValidation", err)
	}

	if _, _, err := svc.Login("a@test.com", "oldpass"); err == nil {
		t.Error("old password still valid after reset")
	}
	if _, _, err := svc.Login("a@test.com", "newpass"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

func TestExpiredOTPRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db, &captureMailer{})

	svc.Register("a@test.com", "secret1", "A", "")
	svc.ForgotPassword("a@test.com")

	// force the 2-minute window shut
	past := time.Now().Add(-time.Minute)
	db.Model(&entity.User{}).Where("email = ?", "a@test.com").
		Update("reset_otp_expires_at", &past)

	var user entity.User
	db.Where("email = ?", "a@test.com").First(&user)
	if err := svc.VerifyOTP("a@test.com", user.ResetOTP); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expired otp: err = %v, want ErrValidation", err)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db, &captureMailer{})

	if err := svc.ForgotPassword("nobody@test.com"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
