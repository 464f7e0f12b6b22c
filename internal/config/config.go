package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const llmTokenSecretName = "github_token"

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	LLM             LLM             `mapstructure:",squash"`
	Mail            Mail            `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Render          Render          `mapstructure:",squash"`
	ReportWorker    ReportWorker    `mapstructure:",squash"`
	ReportRetention ReportRetention `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	ExpirationSeconds int64 `mapstructure:"jwt_expiration_seconds"`
}

type LLM struct {
	Token          string `mapstructure:"github_token"`
	URL            string `mapstructure:"github_models_url"`
	ModelID        string `mapstructure:"model_id"`
	TimeoutSeconds int    `mapstructure:"llm_timeout_seconds"`
}

// Enabled indica se há credencial e modelo configurados
func (l LLM) Enabled() bool {
	return l.Token != "" && l.ModelID != ""
}

type Mail struct {
	Host           string `mapstructure:"smtp_host"`
	Port           int    `mapstructure:"smtp_port"`
	Username       string `mapstructure:"smtp_username"`
	Password       string `mapstructure:"smtp_password"`
	From           string `mapstructure:"smtp_from"`
	TimeoutSeconds int    `mapstructure:"smtp_timeout_seconds"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type ReportWorker struct {
	Workers   int           `mapstructure:"report_workers"`
	QueueSize int           `mapstructure:"report_queue_size"`
	LockTTL   time.Duration `mapstructure:"report_lock_ttl"`
}

type ReportRetention struct {
	CronSchedule  string `mapstructure:"report_retention_cron"`
	RetentionDays int    `mapstructure:"report_retention_days"`
	Enabled       bool   `mapstructure:"report_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("JWT_EXPIRATION_SECONDS", 3600)

	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("GITHUB_MODELS_URL", "https://api.github.com/ai/experimental/models")
	viper.SetDefault("MODEL_ID", "")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 20)

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "reportes@oreo.local")
	viper.SetDefault("SMTP_TIMEOUT_SECONDS", 15)

	viper.SetDefault("REDIS_ADDR", "") // vazio desabilita o lock distribuído
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("REPORT_WORKERS", 4)
	viper.SetDefault("REPORT_QUEUE_SIZE", 100)
	viper.SetDefault("REPORT_LOCK_TTL", "5m")

	viper.SetDefault("REPORT_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("REPORT_RETENTION_DAYS", 90)
	viper.SetDefault("REPORT_RETENTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Token do LLM pode vir dos secret files do Render
	if config.LLM.Token == "" && config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)
		secrets, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao obter secrets do Render, seguindo sem token do LLM")
		} else if token, ok := secrets[llmTokenSecretName]; ok {
			config.LLM.Token = token
		}
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
