package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Recognizer Recognizer
	Scoring    Scoring
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Recognizer holds the per-language upstream model endpoints. An empty
// URL means no upstream is configured for that language and the
// dispatcher falls back to its placeholder result.
type Recognizer struct {
	ASLEndpoint string
	MSLEndpoint string
	Timeout     time.Duration
}

// Scoring holds the proficiency level boundaries. A percentage at or
// above AdvancedMin maps to "advanced", at or above IntermediateMin to
// "intermediate", anything below to "beginner".
type Scoring struct {
	IntermediateMin int
	AdvancedMin     int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("RECOGNIZER_TIMEOUT_SECONDS", 15)
	viper.SetDefault("LEVEL_INTERMEDIATE_MIN", 50)
	viper.SetDefault("LEVEL_ADVANCED_MIN", 80)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Recognizer.ASLEndpoint = viper.GetString("RECOGNIZER_ASL_URL")
	config.Recognizer.MSLEndpoint = viper.GetString("RECOGNIZER_MSL_URL")
	config.Recognizer.Timeout = time.Duration(viper.GetInt("RECOGNIZER_TIMEOUT_SECONDS")) * time.Second

	config.Scoring.IntermediateMin = viper.GetInt("LEVEL_INTERMEDIATE_MIN")
	config.Scoring.AdvancedMin = viper.GetInt("LEVEL_ADVANCED_MIN")

	log.Info().Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
