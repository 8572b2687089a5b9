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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Pipefy     Pipefy     `mapstructure:",squash"`
	Slack      Slack      `mapstructure:",squash"`
	Email      Email      `mapstructure:",squash"`
	CpqMonitor CpqMonitor `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
}

type Pipefy struct {
	URL      string `mapstructure:"pipefy_url"`
	Token    string `mapstructure:"pipefy_token"`
	PipeID   string `mapstructure:"pipefy_pipe_id"`
	ReportID string `mapstructure:"pipefy_report_id"`
}

type Slack struct {
	Token   string `mapstructure:"slack_token"`
	Channel string `mapstructure:"slack_channel"`
}

type Email struct {
	SMTPServer string `mapstructure:"smtp_server"`
	SMTPPort   int    `mapstructure:"smtp_port"`
	From       string `mapstructure:"email"`
	To         string `mapstructure:"email_to"`
	Password   string `mapstructure:"email_password"`
}

type CpqMonitor struct {
	Threshold           float64 `mapstructure:"cpq_threshold"`
	MaxReportAttempts   int     `mapstructure:"report_max_attempts"`
	PollIntervalSeconds int     `mapstructure:"report_poll_interval_seconds"`
	RunOnce             bool    `mapstructure:"run_once"`
	CronSchedule        string  `mapstructure:"cpq_monitor_cron"`
}

// PollInterval retorna o intervalo entre tentativas de consulta do relatório
func (c CpqMonitor) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v21.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_AD_ACCOUNT_ID", "")

	viper.SetDefault("PIPEFY_URL", "https://api.pipefy.com/graphql")
	viper.SetDefault("PIPEFY_TOKEN", "your_pipefy_token") // ONLY LOCAL
	viper.SetDefault("PIPEFY_PIPE_ID", "")
	viper.SetDefault("PIPEFY_REPORT_ID", "")

	viper.SetDefault("SLACK_TOKEN", "")
	viper.SetDefault("SLACK_CHANNEL", "#media-buying")

	viper.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL", "")
	viper.SetDefault("EMAIL_TO", "")
	viper.SetDefault("EMAIL_PASSWORD", "")

	// Defaults do monitoramento de CPQ
	viper.SetDefault("CPQ_THRESHOLD", 100.00)            // Limite de CPQ em moeda local (ex: BRL)
	viper.SetDefault("REPORT_MAX_ATTEMPTS", 30)          // 30 tentativas de consulta do export
	viper.SetDefault("REPORT_POLL_INTERVAL_SECONDS", 10) // 10 segundos entre tentativas
	viper.SetDefault("RUN_ONCE", true)                   // Executar uma única vez (agendador externo)
	viper.SetDefault("CPQ_MONITOR_CRON", "0 */2 * * *")  // A cada 2 horas quando em modo agendado

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
