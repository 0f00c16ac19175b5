package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"whateating/internal/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type AppConfig struct {
	Env  string
	Port int

	WarehouseDriver string
	DatabaseURL     string
	SQLitePath      string
	SQLiteSeed      bool

	LocationsTable   string
	FeedbackDatabase string
	FeedbackTable    string

	SessionSecret string
	SessionDir    string
	SessionTTL    time.Duration

	CORSOrigins []string

	R2          storage.R2Config
	RabbitMQURL string
}

func (c *AppConfig) Production() bool {
	return c.Env == "production"
}

// Load reads .env (outside production) and then the environment.
func Load() (*AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	if v.GetString("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("Note: No .env file found, using environment variables")
		}
	}

	v.SetDefault("PORT", 8000)
	v.SetDefault("WAREHOUSE_DRIVER", DriverPostgres)
	v.SetDefault("SQLITE_PATH", "whateating.db")
	v.SetDefault("SQLITE_SEED", true)
	v.SetDefault("LOCATIONS_TABLE", "marketplace_restaurants.locations_sample")
	v.SetDefault("FEEDBACK_DATABASE", "streamlit_lab")
	v.SetDefault("FEEDBACK_TABLE", "user_feedback")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	cfg := &AppConfig{
		Env:              v.GetString("APP_ENV"),
		Port:             v.GetInt("PORT"),
		WarehouseDriver:  strings.ToLower(v.GetString("WAREHOUSE_DRIVER")),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		SQLitePath:       v.GetString("SQLITE_PATH"),
		SQLiteSeed:       v.GetBool("SQLITE_SEED"),
		LocationsTable:   v.GetString("LOCATIONS_TABLE"),
		FeedbackDatabase: v.GetString("FEEDBACK_DATABASE"),
		FeedbackTable:    v.GetString("FEEDBACK_TABLE"),
		SessionSecret:    v.GetString("SESSION_SECRET"),
		SessionDir:       v.GetString("SESSION_DIR"),
		SessionTTL:       v.GetDuration("SESSION_TTL"),
		CORSOrigins:      splitList(v.GetString("CORS_ORIGINS")),
		R2: storage.R2Config{
			Endpoint:   v.GetString("R2_ENDPOINT"),
			AccessKey:  v.GetString("R2_ACCESS_KEY"),
			SecretKey:  v.GetString("R2_SECRET_KEY"),
			Bucket:     v.GetString("R2_BUCKET_NAME"),
			PublicBase: v.GetString("R2_PUBLIC_BASE_URL"),
		},
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on missing required settings.
func (c *AppConfig) Validate() error {
	var missing []string

	if c.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}

	switch c.WarehouseDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			missing = append(missing, "SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unknown WAREHOUSE_DRIVER %q", c.WarehouseDriver)
	}

	if c.LocationsTable == "" {
		missing = append(missing, "LOCATIONS_TABLE")
	}
	if c.FeedbackDatabase == "" {
		missing = append(missing, "FEEDBACK_DATABASE")
	}
	if c.FeedbackTable == "" {
		missing = append(missing, "FEEDBACK_TABLE")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
