package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Environment struct {
	AppEnv         string        `mapstructure:"app_env" validate:"oneof=development production test"`
	Port           string        `mapstructure:"port" validate:"required"`
	DBDriver       string        `mapstructure:"db_driver" validate:"oneof=postgres sqlite"`
	DBURL          string        `mapstructure:"db_url" validate:"required"`
	JWTSecretKey   string        `mapstructure:"jwt_secret_key" validate:"required,min=16"`
	JWTIssuer      string        `mapstructure:"jwt_issuer" validate:"required"`
	JWTAudience    string        `mapstructure:"jwt_audience" validate:"required"`
	TokenTTL       time.Duration `mapstructure:"token_ttl" validate:"min=1m"`
	AllowedOrigins string        `mapstructure:"cors_allowed_origins"`
	CookieDomain   string        `mapstructure:"cookie_domain"`
}

// IsDevelopment reports whether cookies should be issued for localhost.
func (e Environment) IsDevelopment() bool {
	return e.CookieDomain == ""
}

func (e Environment) Origins() []string {
	var origins []string
	for _, o := range strings.Split(e.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Load reads the process environment (already populated from .env by main)
// and validates it.
func Load() (*Environment, error) {
	v := viper.New()

	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("db_driver", "postgres")
	v.SetDefault("jwt_issuer", "srlboard-api")
	v.SetDefault("jwt_audience", "srlboard-web")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("cors_allowed_origins", "http://localhost:3000")
	v.SetDefault("cookie_domain", "")

	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, AutomaticEnv alone is not enough.
	for _, key := range []string{"db_url", "jwt_secret_key"} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", strings.ToUpper(key), err)
		}
	}

	var env Environment
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(env); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &env, nil
}
