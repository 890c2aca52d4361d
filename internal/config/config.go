package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	envPrefix = "PAWNOTE"
)

var (
	ErrMissingPath = errors.New("storage.path is required for the sqlite driver")
	ErrMissingDSN  = errors.New("storage.dsn is required for the postgres driver")
)

type App struct {
	Name string `mapstructure:"name" validate:"required"`
}

type HTTP struct {
	Addr         string        `mapstructure:"addr" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"required|min:1"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"required|min:1"`
}

type Storage struct {
	Driver string `mapstructure:"driver" validate:"required|in:memory,sqlite,postgres"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

type Cache struct {
	Enabled bool `mapstructure:"enabled"`
	SizeMB  int  `mapstructure:"size_mb" validate:"min:0"`
}

type Log struct {
	Level  string `mapstructure:"level" validate:"required|in:debug,info,warn,warning,error"`
	Format string `mapstructure:"format" validate:"required|in:text,json"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// Remote es el backend REST viejo, sólo para `pawnote pull`.
type Remote struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Config struct {
	App     App     `mapstructure:"app"`
	HTTP    HTTP    `mapstructure:"http"`
	Storage Storage `mapstructure:"storage"`
	Cache   Cache   `mapstructure:"cache"`
	Log     Log     `mapstructure:"log"`
	Metrics Metrics `mapstructure:"metrics"`
	Remote  Remote  `mapstructure:"remote"`

	// Path del archivo usado ("" si sólo defaults + env).
	Path string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pawnote")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.size_mb", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("remote.base_url", "")
	v.SetDefault("remote.timeout", 10*time.Second)
}

// Load arma la config en este orden (el último gana):
// defaults < archivo yaml < variables de entorno (.env incluido).
//
// Env: PAWNOTE_<SECCION>_<CAMPO>, p.ej. PAWNOTE_STORAGE_DRIVER=sqlite.
// También se aceptan LOG_LEVEL, LOG_FORMAT, APP_NAME y DB_DSN.
func Load(path string) (*Config, error) {
	// .env es opcional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("log.level", envPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", envPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("app.name", envPrefix+"_APP_NAME", "APP_NAME")
	_ = v.BindEnv("storage.dsn", envPrefix+"_STORAGE_DSN", "DB_DSN")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("pawnote")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	conf.Path = v.ConfigFileUsed()

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) Validate() error {
	vd := validate.Struct(c)
	if !vd.Validate() {
		return fmt.Errorf("invalid config: %w", vd.Errors)
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return ErrMissingPath
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrMissingDSN
		}
	}
	return nil
}
