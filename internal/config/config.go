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

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Llama       Llama       `mapstructure:",squash"`
	Query       Query       `mapstructure:",squash"`
	ModelHealth ModelHealth `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	DashboardFile  string   `mapstructure:"dashboard_file"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Path     string `mapstructure:"database_path"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Llama configura o acesso ao servidor de completions (llama.cpp ou compatível)
type Llama struct {
	BaseURL        string  `mapstructure:"llama_base_url"`
	MaxNewTokens   int     `mapstructure:"llama_max_new_tokens"`
	Temperature    float64 `mapstructure:"llama_temperature"`
	TimeoutSeconds int     `mapstructure:"llama_timeout_seconds"`
	MaxConcurrent  int     `mapstructure:"llama_max_concurrent"`
}

// Query configura o comportamento do pipeline de consultas em linguagem natural
type Query struct {
	// ProfitMarginRate é a taxa usada na estimativa de lucro (stub de negócio)
	ProfitMarginRate float64 `mapstructure:"query_profit_margin_rate"`
	// AllowWriteStatements mantém o comportamento original de executar qualquer
	// statement gerado. Desabilitar restringe a execução a SELECT.
	AllowWriteStatements bool `mapstructure:"query_allow_write_statements"`
}

type ModelHealth struct {
	CronSchedule string `mapstructure:"model_health_cron"`
	Enabled      bool   `mapstructure:"model_health_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")
	viper.SetDefault("DASHBOARD_FILE", "web/dashboard.html")

	viper.SetDefault("DATABASE_DRIVER", "sqlite3")
	viper.SetDefault("DATABASE_PATH", "db/business.db")
	viper.SetDefault("DATABASE_URL", "localhost:5432/business")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LLAMA_BASE_URL", "http://localhost:8080")
	viper.SetDefault("LLAMA_MAX_NEW_TOKENS", 150) // Mesmo limite do modelo original
	viper.SetDefault("LLAMA_TEMPERATURE", 0.1)
	viper.SetDefault("LLAMA_TIMEOUT_SECONDS", 60)
	viper.SetDefault("LLAMA_MAX_CONCURRENT", 2)

	viper.SetDefault("QUERY_PROFIT_MARGIN_RATE", 0.25)
	viper.SetDefault("QUERY_ALLOW_WRITE_STATEMENTS", true)

	viper.SetDefault("MODEL_HEALTH_CRON", "*/5 * * * *") // Sondagem a cada 5 minutos
	viper.SetDefault("MODEL_HEALTH_ENABLED", true)

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

	config.Database.DSN, err = buildDSN(config.Database)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// buildDSN monta a string de conexão de acordo com o driver configurado.
// O schema do banco é de responsabilidade do job de carga externo.
func buildDSN(db Database) (string, error) {
	switch db.Driver {
	case "sqlite3":
		return db.Path, nil
	case "postgres":
		return fmt.Sprintf(
			"%s://%s:%s@%s",
			db.Driver,
			db.User,
			db.Password,
			db.URL,
		), nil
	default:
		return "", fmt.Errorf("driver de banco não suportado: %s", db.Driver)
	}
}

// InferenceTimeout converte o timeout configurado para time.Duration
func (c *Config) InferenceTimeout() time.Duration {
	return time.Duration(c.Llama.TimeoutSeconds) * time.Second
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
