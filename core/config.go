package core

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string // DEV (local; default), TEST, QA, PROD
		TestMode bool
		Debug    bool
		AppName  string
		Build    string

		// EnableMockData gates every mock-backed endpoint of the API.
		EnableMockData bool

		AllowedHosts        []string
		CORSAllowedOrigins  []string
		EnableSecureHeaders bool
		SecureSSLRedirect   bool
		SecureHSTSSeconds   int

		RollbarToken string

		Server ServerConfig
	}

	ServerConfig struct {
		Address         string
		DebugAddress    string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}
)

// env var bound to each config key
var envKeys = map[string]string{
	"debug":                  "DEBUG",
	"appName":                "APP_NAME",
	"build":                  "BUILD",
	"enableMockData":         "ENABLE_MOCK_DATA",
	"allowedHosts":           "ALLOWED_HOSTS",
	"corsAllowedOrigins":     "CORS_ALLOWED_ORIGINS",
	"enableSecureHeaders":    "ENABLE_SECURE_HEADERS",
	"secureSSLRedirect":      "SECURE_SSL_REDIRECT",
	"secureHSTSSeconds":      "SECURE_HSTS_SECONDS",
	"rollbarToken":           "ROLLBAR_TOKEN",
	"server.address":         "SERVER_ADDRESS",
	"server.debugAddress":    "SERVER_DEBUG_ADDRESS",
	"server.readTimeout":     "SERVER_READ_TIMEOUT",
	"server.writeTimeout":    "SERVER_WRITE_TIMEOUT",
	"server.shutdownTimeout": "SERVER_SHUTDOWN_TIMEOUT",
	"server.disableReqLogs":  "DISABLE_REQUEST_LOGS",
}

// NewConfig loads the optional dotenv file then reads the configuration from the environment.
func NewConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("appName", "SchoolOS")
	v.SetDefault("build", "develop")
	v.SetDefault("enableMockData", false)
	v.SetDefault("allowedHosts", "")
	v.SetDefault("corsAllowedOrigins", "")
	v.SetDefault("enableSecureHeaders", false)
	v.SetDefault("secureSSLRedirect", false)
	v.SetDefault("secureHSTSSeconds", 0)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugAddress", ":4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "binding %s", env)
		}
	}

	env := strings.ToUpper(CleanString(os.Getenv("ENV")))
	if env == "" {
		env = "DEV"
	}

	return &Config{
		Env:                 env,
		TestMode:            env == "TEST",
		Debug:               v.GetBool("debug"),
		AppName:             v.GetString("appName"),
		Build:               v.GetString("build"),
		EnableMockData:      v.GetBool("enableMockData"),
		AllowedHosts:        SplitList(v.GetString("allowedHosts")),
		CORSAllowedOrigins:  SplitList(v.GetString("corsAllowedOrigins")),
		EnableSecureHeaders: v.GetBool("enableSecureHeaders"),
		SecureSSLRedirect:   v.GetBool("secureSSLRedirect"),
		SecureHSTSSeconds:   v.GetInt("secureHSTSSeconds"),
		RollbarToken:        v.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			DebugAddress:    v.GetString("server.debugAddress"),
			ReadTimeout:     v.GetDuration("server.readTimeout"),
			WriteTimeout:    v.GetDuration("server.writeTimeout"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
	}, nil
}

// loadDotEnv loads ENV_FILE (default: .env) if it exists. Variables already set are left untouched.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}
	return nil
}
