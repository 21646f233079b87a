package config

import (
	"context"
	"flag"
	"log/slog"

	"github.com/caarlos0/env/v6"

	"github.com/talx-hub/gopher-accounts/internal/model"
)

type Config struct {
	RunAddr                    string  `env:"RUN_ADDRESS"                   envDefault:"localhost:8080"`
	DatabaseURI                string  `env:"DATABASE_URI"                  envDefault:""`
	SecretKey                  string  `env:"SECRET_KEY"                    envDefault:""`
	LogLevel                   string  `env:"LOG_LEVEL"                     envDefault:"info"`
	MinPasswordEntropy         float64 `env:"MIN_PASSWORD_ENTROPY"          envDefault:"0"`
	BcryptCost                 int     `env:"BCRYPT_COST"                   envDefault:"10"`
	EnforceLoginPasswordPolicy bool    `env:"ENFORCE_LOGIN_PASSWORD_POLICY" envDefault:"true"`
}

type Builder struct {
	cfg *Config
	log *slog.Logger
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{
			RunAddr:                    "",
			DatabaseURI:                "",
			SecretKey:                  "",
			LogLevel:                   "",
			MinPasswordEntropy:         0,
			BcryptCost:                 0,
			EnforceLoginPasswordPolicy: false,
		},
		log: log,
	}
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromFlags() *Builder {
	b.bindFlags(flag.CommandLine)
	flag.Parse()
	return b
}

// FromFlagSet is FromFlags for an explicit flag set and argument list.
func (b *Builder) FromFlagSet(fs *flag.FlagSet, args []string) *Builder {
	b.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse flags", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) bindFlags(fs *flag.FlagSet) {
	fs.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	fs.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI")
	fs.StringVar(&b.cfg.SecretKey, "k", b.cfg.SecretKey, "Secret key")
	fs.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	fs.Float64Var(&b.cfg.MinPasswordEntropy, "e", b.cfg.MinPasswordEntropy,
		"Minimal password entropy in bits, 0 disables the check")
	fs.IntVar(&b.cfg.BcryptCost, "c", b.cfg.BcryptCost, "Bcrypt cost")
	fs.BoolVar(&b.cfg.EnforceLoginPasswordPolicy, "p", b.cfg.EnforceLoginPasswordPolicy,
		"Apply registration password rules on login")
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}
