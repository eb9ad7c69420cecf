package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Load looks when no -config flag is given.
const DefaultConfigPath = "config.yml"

// AppConfig holds runtime configuration. Values come from the YAML file and
// may be overridden per key by environment variables.
type AppConfig struct {
	Port           int        `yaml:"port"`
	Env            string     `yaml:"env"` // "development" | "production"
	DSN            string     `yaml:"dsn"` // MySQL DSN
	RedisURL       string     `yaml:"redis_url"`
	JWTSecret      string     `yaml:"jwt_secret"`
	AllowedOrigins []string   `yaml:"allowed_origins"`
	UploadsDir     string     `yaml:"uploads_dir"`
	Admin          AdminBoot  `yaml:"admin"`
	Mail           MailConfig `yaml:"mail"`
}

// AdminBoot is the legacy bootstrap credential pair, used for login only
// while no admin account exists in the database.
type AdminBoot struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MailConfig configures OTP delivery. With Enable=false the OTP is written to
// the server log instead.
type MailConfig struct {
	Enable    bool   `yaml:"enable"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Pass      string `yaml:"pass"`
	From      string `yaml:"from"`
	UseResend bool   `yaml:"use_resend"`
	ResendKey string `yaml:"resend_key"`
}

// Load reads the YAML config file (missing file is fine) and applies
// environment overrides.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:       5000,
		Env:        "development",
		UploadsDir: "uploads",
		Admin:      AdminBoot{Username: "admin", Password: "admin123"},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)

	if cfg.Port <= 0 {
		cfg.Port = 5000
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is required (dsn key or DSN env)")
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	} else if v := os.Getenv("NODE_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		cfg.UploadsDir = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Mail.Enable = true
		cfg.Mail.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Mail.Port = p
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.Mail.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.Mail.Pass = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		cfg.Mail.From = v
	}
	if v := os.Getenv("RESEND_KEY"); v != "" {
		cfg.Mail.Enable = true
		cfg.Mail.UseResend = true
		cfg.Mail.ResendKey = v
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return !strings.EqualFold(c.Env, "production")
}
