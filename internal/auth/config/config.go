package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Address     string `envconfig:"AUTH_SERVER_ADDRESS" default:"localhost"`
	Port        string `envconfig:"AUTH_SERVER_PORT" default:"5001"`
	ReadTimeout int    `envconfig:"AUTH_SERVER_TIMEOUT" default:"10"`
}

type Seed struct {
	Email    string `envconfig:"AUTH_SEED_EMAIL" default:""`
	Password string `envconfig:"AUTH_SEED_PASSWORD" default:""`
	Name     string `envconfig:"AUTH_SEED_NAME" default:""`
}

type Config struct {
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`
	LogFile       string `envconfig:"AUTH_LOG_FILE" default:""`

	Server Server
	Seed   Seed
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
