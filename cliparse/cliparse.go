package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// TokenTTL is the validity window of admin tokens.
const TokenTTL = 8 * time.Hour

// DefaultUploadMaxBytes is the résumé upload size ceiling.
const DefaultUploadMaxBytes = 10 << 20 // 10 MB

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	AdminUser      string
	AdminPassword  string
	TokenSecret    string
	TokenTTL       time.Duration
	UploadDir      string
	UploadMaxBytes int64
	PublicDir      string
	ItemBankPath   string

	insecureDefaults []string
}

// ParseFlags validates flags and fills in environment fallbacks and defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gestalent-portal", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminUser, "admin-user", "", "Admin username (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")
	fs.StringVar(&cfg.TokenSecret, "jwt-secret", "", "Token signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "gestalent.db"
	}

	// Admin credentials and signing secret keep hard-coded fallbacks so a
	// bare dev checkout still boots. Every fallback is recorded and logged
	// at startup; production deployments must set the env variables.
	if cfg.AdminUser == "" {
		cfg.AdminUser = os.Getenv("ADMIN_USER")
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = "admin"
		cfg.insecureDefaults = append(cfg.insecureDefaults, "ADMIN_USER")
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		cfg.insecureDefaults = append(cfg.insecureDefaults, "ADMIN_PASSWORD")
	}

	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = "gestalent-dev-secret"
		cfg.insecureDefaults = append(cfg.insecureDefaults, "JWT_SECRET")
	}

	cfg.TokenTTL = TokenTTL

	cfg.UploadDir = os.Getenv("UPLOAD_DIR")
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	cfg.UploadMaxBytes = DefaultUploadMaxBytes
	if mbStr := os.Getenv("UPLOAD_MAX_MB"); mbStr != "" {
		mb, err := strconv.Atoi(mbStr)
		if err != nil || mb <= 0 {
			return Config{}, errors.New("invalid UPLOAD_MAX_MB env variable")
		}
		cfg.UploadMaxBytes = int64(mb) << 20
	}

	cfg.PublicDir = os.Getenv("PUBLIC_DIR")
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}

	cfg.ItemBankPath = os.Getenv("ITEMBANK_PATH")
	if cfg.ItemBankPath == "" {
		cfg.ItemBankPath = "data/bigfive_items.json"
	}

	return cfg, nil
}

// InsecureDefaults lists the secrets that fell back to hard-coded dev values.
func (c Config) InsecureDefaults() []string {
	return c.insecureDefaults
}
