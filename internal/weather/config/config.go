package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Address     string `envconfig:"WEATHER_SERVER_ADDRESS" default:"localhost"`
	Port        string `envconfig:"WEATHER_SERVER_PORT" default:"5002"`
	ReadTimeout int    `envconfig:"WEATHER_SERVER_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Redis struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	LiveTime int    `envconfig:"REDIS_LIVE_TIME_MINUTES" default:"10"`
}

type Config struct {
	GeocodingAPIURL string `envconfig:"GEOCODING_API_URL" default:"https://geocoding-api.open-meteo.com"`
	ForecastAPIURL  string `envconfig:"FORECAST_API_URL" default:"https://api.open-meteo.com"`

	Server  Server
	Breaker Breaker
	Redis   Redis

	LogsPath string `envconfig:"LOGS_PATH" default:"./log/weather-dashboard.log"`
	LogFile  string `envconfig:"WEATHER_LOG_FILE" default:""`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Address + ":" + c.Server.Port
}
