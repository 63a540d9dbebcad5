package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort            string  `mapstructure:"SERVER_PORT"`
	RequestTimeoutSeconds int     `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	MaxRetries            int     `mapstructure:"MAX_RETRIES"`
	OpenAIAPIKey          string  `mapstructure:"OPENAI_API_KEY"`
	ModelName             string  `mapstructure:"MODEL_NAME"`
	ModelTemperature      float64 `mapstructure:"MODEL_TEMPERATURE"`
	TicketmasterAPIKey    string  `mapstructure:"TICKETMASTER_API_KEY"`
	RedisAddr             string  `mapstructure:"REDIS_ADDR"`
	RedisPassword         string  `mapstructure:"REDIS_PASSWORD"`
}

// Load reads configuration from the environment. Optional API keys and
// REDIS_ADDR default to empty, which disables the feature they gate.
func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 8)
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("MODEL_NAME", "gpt-4o-mini")
	viper.SetDefault("MODEL_TEMPERATURE", 0.2)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("TICKETMASTER_API_KEY", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
