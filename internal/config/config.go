package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	DashboardSync DashboardSync `mapstructure:",squash"`
	Generator     Generator     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// DashboardSync controla a cron que materializa o resumo diário do dashboard.
type DashboardSync struct {
	CronSchedule string `mapstructure:"dashboard_sync_cron"`
	Enabled      bool   `mapstructure:"dashboard_sync_enabled"`
	TopProducts  int    `mapstructure:"dashboard_sync_top_products"`
}

// Generator define os padrões do gerador de dados sintéticos (cmd/datagen).
type Generator struct {
	Rows      int   `mapstructure:"generator_rows"`
	Months    int   `mapstructure:"generator_months"`
	BatchSize int   `mapstructure:"generator_batch_size"`
	Seed      int64 `mapstructure:"generator_seed"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/restaurant_analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	// Defaults da materialização do dashboard
	viper.SetDefault("DASHBOARD_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DASHBOARD_SYNC_ENABLED", false)
	viper.SetDefault("DASHBOARD_SYNC_TOP_PRODUCTS", 5)

	// Defaults do gerador de dados
	viper.SetDefault("GENERATOR_ROWS", 10000)
	viper.SetDefault("GENERATOR_MONTHS", 3)
	viper.SetDefault("GENERATOR_BATCH_SIZE", 1000)
	viper.SetDefault("GENERATOR_SEED", 42)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// O .env é opcional: em produção tudo chega por variável de ambiente
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env a partir das localizações conhecidas
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
