package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "FARMAGEST"

type Config struct {
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`

	Auth struct {
		// JWTSecret signs/verifies the HS256 bearer tokens issued at
		// sign-in.
		JWTSecret string `mapstructure:"jwt_secret"`
		// AuthorizedEmails is the fixed allow-list. Matching is exact
		// and lowercase; an authenticated e-mail outside this list is
		// rejected regardless of the identity provider's verdict.
		AuthorizedEmails []string `mapstructure:"authorized_emails"`
	} `mapstructure:"auth"`

	Renderer struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"renderer"`
}

// Get loads configuration from environment variables (FARMAGEST_ prefix)
// with sane local defaults, e.g. FARMAGEST_SERVER_PORT, FARMAGEST_AUTH_JWT_SECRET,
// FARMAGEST_AUTH_AUTHORIZED_EMAILS (comma separated), FARMAGEST_RENDERER_URL.
func Get(logger zerolog.Logger) *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", 8080)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.authorized_emails", "")
	v.SetDefault("renderer.url", "http://localhost:3001/render")
	v.SetDefault("renderer.timeout", 30*time.Second)

	cfg := &Config{}
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.AuthorizedEmails = splitEmails(v.GetString("auth.authorized_emails"))
	cfg.Renderer.URL = v.GetString("renderer.url")
	cfg.Renderer.Timeout = v.GetDuration("renderer.timeout")

	if cfg.Auth.JWTSecret == "" {
		logger.Warn().Msg("auth.jwt_secret not set; bearer tokens cannot be verified")
	}
	if len(cfg.Auth.AuthorizedEmails) == 0 {
		logger.Warn().Msg("auth.authorized_emails is empty; every sign-in will be denied")
	}

	return cfg
}

func splitEmails(raw string) []string {
	var out []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
