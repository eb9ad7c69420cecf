package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jasri-space/core/internal/config"
	"github.com/jasri-space/core/internal/models"
	jwtpkg "github.com/jasri-space/core/internal/pkg/jwt"
	"github.com/jasri-space/core/internal/pkg/mail"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	otpTTL         = 10 * time.Minute
)

// identity is the outcome of a successful credential check. UserID is empty
// for the env bootstrap admin.
type identity struct {
	UserID   string
	Username string
}

// verifier checks a username/password pair against one credential source.
type verifier interface {
	Verify(username, password string) (*identity, error)
}

// dbVerifier authenticates against the users table with bcrypt.
type dbVerifier struct{ db *gorm.DB }

func (v dbVerifier) Verify(username, password string) (*identity, error) {
	var u models.UserModel
	if err := v.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	return &identity{UserID: u.ID, Username: u.Username}, nil
}

// envVerifier authenticates against the bootstrap credentials from the
// environment. Only consulted while no database account exists.
type envVerifier struct{ admin config.AdminBoot }

func (v envVerifier) Verify(username, password string) (*identity, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.admin.Password)) == 1
	if !userOK || !passOK {
		return nil, errInvalidCredentials
	}
	return &identity{Username: username}, nil
}

type Service struct {
	db     *gorm.DB
	cfg    *config.AppConfig
	mailer *mail.Sender
	log    *zap.Logger
}

func NewService(db *gorm.DB, cfg *config.AppConfig, mailer *mail.Sender, log *zap.Logger) *Service {
	return &Service{db: db, cfg: cfg, mailer: mailer, log: log.Named("AuthService")}
}

// Login verifies credentials and returns a signed 24h session token. The
// credential source is chosen at login time: database account if one exists,
// env bootstrap otherwise. Callers get the same error for unknown username
// and wrong password.
func (s *Service) Login(username, password string) (string, *identity, error) {
	var v verifier = dbVerifier{db: s.db}
	if !s.hasAccount() {
		v = envVerifier{admin: s.cfg.Admin}
	}

	id, err := v.Verify(username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := jwtpkg.Sign(id.UserID, id.Username, jwtpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}
	return token, id, nil
}

func (s *Service) hasAccount() bool {
	var count int64
	s.db.Model(&models.UserModel{}).Count(&count)
	return count > 0
}

// Register creates the admin account. Only one may exist.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	if s.hasAccount() {
		return nil, errAdminExists
	}
	if len(dto.Password) < minPasswordLen {
		return nil, errPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.UserModel{Username: dto.Username, Email: dto.Email, Password: string(hash)}
	return &u, s.db.Create(&u).Error
}

// ChangePassword verifies the current password and stores a new hash. The
// env bootstrap admin has no database row to persist into and is refused.
func (s *Service) ChangePassword(userID, current, newPassword string) error {
	if userID == "" {
		return errEnvBackedAccount
	}
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errInvalidCredentials
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)); err != nil {
		return errInvalidCredentials
	}
	if len(newPassword) < minPasswordLen {
		return errPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&u).Update("password", string(hash)).Error
}

// ForgotPassword stores a 6-digit OTP on the account and delivers it by mail,
// or to the server log when no transport is configured.
func (s *Service) ForgotPassword(email string) error {
	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errUserNotFound
		}
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}
	expires := time.Now().Add(otpTTL)
	if err := s.db.Model(&u).Updates(map[string]interface{}{
		"otp":         otp,
		"otp_expires": expires,
	}).Error; err != nil {
		return err
	}

	if s.mailer != nil && s.mailer.Enabled() {
		if err := s.mailer.SendOTP(u.Email, mail.OTPData{Code: otp, ExpiresMinutes: int(otpTTL.Minutes())}); err != nil {
			s.log.Warn("failed to send OTP email", zap.Error(err))
			s.log.Info("password reset code", zap.String("email", u.Email), zap.String("otp", otp))
		}
		return nil
	}
	s.log.Info("password reset code", zap.String("email", u.Email), zap.String("otp", otp))
	return nil
}

// ResetPassword checks the OTP and expiry, then rehashes the password and
// clears the OTP fields.
func (s *Service) ResetPassword(email, otp, newPassword string) error {
	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errInvalidOTP
		}
		return err
	}
	if u.OTP == "" || u.OTPExpires == nil || time.Now().After(*u.OTPExpires) {
		return errInvalidOTP
	}
	if subtle.ConstantTimeCompare([]byte(u.OTP), []byte(otp)) != 1 {
		return errInvalidOTP
	}
	if len(newPassword) < minPasswordLen {
		return errPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&u).Updates(map[string]interface{}{
		"password":    string(hash),
		"otp":         "",
		"otp_expires": nil,
	}).Error
}

// ClearExpiredOTPs wipes OTP fields past their expiry. Used by the cron job.
func (s *Service) ClearExpiredOTPs() (int64, error) {
	res := s.db.Model(&models.UserModel{}).
		Where("otp <> '' AND otp_expires < ?", time.Now()).
		Updates(map[string]interface{}{"otp": "", "otp_expires": nil})
	return res.RowsAffected, res.Error
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
