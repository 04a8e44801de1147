// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for tag-driven parsing:
//
//	type Config struct {
//	    OSName    string `env:"USERAGENT_OS_NAME" envDefault:"Unknown"`
//	    OSVersion string `env:"USERAGENT_OS_VERSION" envDefault:"0.0.0"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Each configuration type is parsed once per process and served from a
// cache afterwards. ResetCache clears it, which is mostly useful in tests.
// LoadEnv reads additional .env files before the first Load.
package config
