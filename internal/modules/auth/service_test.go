package auth

import (
	"errors"
	"testing"

	"github.com/jasri-space/core/internal/config"
	"github.com/jasri-space/core/internal/database"
	"github.com/jasri-space/core/internal/models"
	"github.com/jasri-space/core/internal/pkg/jwt"
	"github.com/jasri-space/core/internal/pkg/mail"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.AppConfig{
		Env:   "development",
		Admin: config.AdminBoot{Username: "admin", Password: "admin123"},
	}
	return NewService(db, cfg, mail.New(cfg.Mail), zap.NewNop()), db
}

func TestEnvLoginFallback(t *testing.T) {
	svc, _ := newTestService(t)

	token, id, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.UserID != "" {
		t.Errorf("env session has UserID %q", id.UserID)
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q", claims.Username)
	}

	if _, _, err := svc.Login("admin", "wrong"); !errors.Is(err, errInvalidCredentials) {
		t.Fatalf("err = %v, want errInvalidCredentials", err)
	}
	if _, _, err := svc.Login("ghost", "admin123"); !errors.Is(err, errInvalidCredentials) {
		t.Fatalf("err = %v, want errInvalidCredentials", err)
	}
}

func TestRegisterSupersedesEnvLogin(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.Register(&RegisterDTO{Username: "jasri", Email: "j@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == "" {
		t.Fatal("id not assigned")
	}

	// env bootstrap credentials stop working once a real account exists
	if _, _, err := svc.Login("admin", "admin123"); !errors.Is(err, errInvalidCredentials) {
		t.Fatalf("err = %v, want errInvalidCredentials", err)
	}

	_, id, err := svc.Login("jasri", "hunter22")
	if err != nil {
		t.Fatalf("db login: %v", err)
	}
	if id.UserID != u.ID {
		t.Errorf("UserID = %q, want %q", id.UserID, u.ID)
	}
}

func TestRegisterOnlyOnce(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register(&RegisterDTO{Username: "jasri", Password: "hunter22"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(&RegisterDTO{Username: "other", Password: "hunter22"}); !errors.Is(err, errAdminExists) {
		t.Fatalf("err = %v, want errAdminExists", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register(&RegisterDTO{Username: "jasri", Password: "abc"}); !errors.Is(err, errPasswordTooShort) {
		t.Fatalf("err = %v, want errPasswordTooShort", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.Register(&RegisterDTO{Username: "jasri", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(u.ID, "wrong", "newsecret"); !errors.Is(err, errInvalidCredentials) {
		t.Fatalf("err = %v, want errInvalidCredentials", err)
	}
	if err := svc.ChangePassword(u.ID, "hunter22", "abc"); !errors.Is(err, errPasswordTooShort) {
		t.Fatalf("err = %v, want errPasswordTooShort", err)
	}
	if err := svc.ChangePassword(u.ID, "hunter22", "newsecret"); err != nil {
		t.Fatalf("change: %v", err)
	}

	if _, _, err := svc.Login("jasri", "hunter22"); !errors.Is(err, errInvalidCredentials) {
		t.Fatal("old password still accepted")
	}
	if _, _, err := svc.Login("jasri", "newsecret"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestChangePasswordEnvBacked(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.ChangePassword("", "admin123", "newsecret"); !errors.Is(err, errEnvBackedAccount) {
		t.Fatalf("err = %v, want errEnvBackedAccount", err)
	}
}

func TestOTPResetFlow(t *testing.T) {
	svc, db := newTestService(t)

	if _, err := svc.Register(&RegisterDTO{Username: "jasri", Email: "j@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ForgotPassword("nobody@example.com"); !errors.Is(err, errUserNotFound) {
		t.Fatalf("err = %v, want errUserNotFound", err)
	}
	if err := svc.ForgotPassword("j@example.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}

	var u models.UserModel
	if err := db.Where("email = ?", "j@example.com").First(&u).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if len(u.OTP) != 6 {
		t.Fatalf("otp = %q, want 6 digits", u.OTP)
	}
	if u.OTPExpires == nil {
		t.Fatal("otp expiry not set")
	}

	if err := svc.ResetPassword("j@example.com", "000000", "newsecret"); err == nil || !errors.Is(err, errInvalidOTP) {
		if u.OTP == "000000" {
			t.Skip("generated code collided with the guess")
		}
		t.Fatalf("err = %v, want errInvalidOTP", err)
	}
	if err := svc.ResetPassword("j@example.com", u.OTP, "newsecret"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, _, err := svc.Login("jasri", "newsecret"); err != nil {
		t.Fatalf("login after reset: %v", err)
	}

	// code is single-use
	if err := svc.ResetPassword("j@example.com", u.OTP, "another1"); !errors.Is(err, errInvalidOTP) {
		t.Fatalf("err = %v, want errInvalidOTP", err)
	}
}
