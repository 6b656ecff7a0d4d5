package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type AuthCfg struct {
	JWTSecret     string
	TokenTTLHours int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type ImportCfg struct {
	BatchSize int
}

type CloudCfg struct {
	Enabled      bool
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

type Config struct {
	App    AppCfg
	Auth   AuthCfg
	Log    LogCfg
	DB     DBCfg
	Redis  RedisCfg
	Import ImportCfg
	Cloud  CloudCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	setDefaults(base)

	// Read the file if there is one; expand ${ENV} references before parsing.
	if err := base.ReadInConfig(); err == nil {
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No config file is also fine, env + defaults only.
	cfg := new(Config)
	if err := base.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "annotext")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("auth.jwtSecret", "change-me")
	v.SetDefault("auth.tokenTTLHours", 72)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.maxOpen", 20)
	v.SetDefault("db.maxIdle", 5)
	v.SetDefault("db.autoMigrate", true)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("import.batchSize", 500)
	v.SetDefault("cloud.region", "auto")
	v.SetDefault("cloud.usePathStyle", true)
}
