package config

import (
	"github.com/spf13/viper"

	"github.com/weiawesome/wes-io-live/quickid/internal/generator"
	pkgconfig "github.com/weiawesome/wes-io-live/quickid/pkg/config"
)

type Config struct {
	Server  ServerConfig
	GRPC    GRPCConfig
	QuickID QuickIDConfig `mapstructure:"quickid"`
	NanoID  NanoIDConfig  `mapstructure:"nanoid"`
	CUID2   CUID2Config   `mapstructure:"cuid2"`
	Limits  LimitsConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GRPCConfig struct {
	Host string
	Port int
}

// QuickIDConfig is the default configuration of the quick scheme.
// Length 0 keeps the per-type default.
type QuickIDConfig struct {
	Prefix string `mapstructure:"prefix"`
	Type   string `mapstructure:"type"`
	Length int    `mapstructure:"length"`
}

type NanoIDConfig struct {
	Size     int    `mapstructure:"size"`
	Alphabet string `mapstructure:"alphabet"`
}

type CUID2Config struct {
	Length int `mapstructure:"length"`
}

type LimitsConfig struct {
	MaxBatch  int `mapstructure:"max_batch"`
	MaxTrials int `mapstructure:"max_trials"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads ./config/config.yaml (optional) and the environment.
func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}
	return build(v)
}

// LoadFile reads an explicit config file and the environment.
func LoadFile(file string) (*Config, error) {
	v, err := pkgconfig.LoadFile(file)
	if err != nil {
		return nil, err
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8091)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50054)
	v.SetDefault("quickid.prefix", "")
	v.SetDefault("quickid.type", "string")
	v.SetDefault("quickid.length", 0)
	v.SetDefault("nanoid.size", generator.DefaultNanoIDSize)
	v.SetDefault("nanoid.alphabet", "")
	v.SetDefault("cuid2.length", generator.DefaultCUID2Length)
	v.SetDefault("limits.max_batch", 1000)
	v.SetDefault("limits.max_trials", 100000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("quickid.prefix", "QUICKID_PREFIX")
	v.BindEnv("quickid.type", "QUICKID_TYPE")
	v.BindEnv("quickid.length", "QUICKID_LENGTH")
	v.BindEnv("nanoid.size", "NANOID_SIZE")
	v.BindEnv("nanoid.alphabet", "NANOID_ALPHABET")
	v.BindEnv("cuid2.length", "CUID2_LENGTH")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
