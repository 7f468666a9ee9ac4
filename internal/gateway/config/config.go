package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Address     string `envconfig:"GATEWAY_SERVER_ADDRESS" default:"localhost"`
	Port        string `envconfig:"GATEWAY_SERVER_PORT" default:"5000"`
	ReadTimeout int    `envconfig:"GATEWAY_SERVER_TIMEOUT" default:"10"`
}

type Config struct {
	AuthServiceURL    string `envconfig:"AUTH_SERVICE_URL" default:"http://localhost:5001"`
	WeatherServiceURL string `envconfig:"WEATHER_SERVICE_URL" default:"http://localhost:5002"`
	LogFile           string `envconfig:"GATEWAY_LOG_FILE" default:""`

	Server Server
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
