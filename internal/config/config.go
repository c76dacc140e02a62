// Package config loads configuration of datakit CLI
package config

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ////////////////////////////////////////////////////////////////////////////////// //

const (
	KEY_MEDIA_DIR   = "media.dir"
	KEY_SEAL_SECRET = "seal.secret"
	KEY_DEBUG       = "debug"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Config contains CLI configuration
type Config struct {
	MediaDir   string
	SealSecret string
	Debug      bool
}

// ////////////////////////////////////////////////////////////////////////////////// //

var ErrEmptyMediaDir = fmt.Errorf("Media directory is empty")

// ////////////////////////////////////////////////////////////////////////////////// //

// Load loads configuration from environment variables and optional env file.
// Missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)

		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("Can't load env file %q: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AllowEmptyEnv(true)

	for key, env := range map[string]string{
		KEY_MEDIA_DIR:   "DATAKIT_MEDIA_DIR",
		KEY_SEAL_SECRET: "DATAKIT_SEAL_SECRET",
		KEY_DEBUG:       "DATAKIT_DEBUG",
	} {
		err := v.BindEnv(key, env)

		if err != nil {
			return nil, fmt.Errorf("Can't bind %s: %w", key, err)
		}
	}

	v.SetDefault(KEY_MEDIA_DIR, ".")
	v.SetDefault(KEY_DEBUG, false)

	cfg := &Config{
		MediaDir:   v.GetString(KEY_MEDIA_DIR),
		SealSecret: v.GetString(KEY_SEAL_SECRET),
		Debug:      v.GetBool(KEY_DEBUG),
	}

	if cfg.MediaDir == "" {
		return nil, ErrEmptyMediaDir
	}

	return cfg, nil
}
