// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "pathtemplate"
	configFileType = "yaml"
	envPrefix      = "PATHTEMPLATE"

	cfgKeyDefinitions = "definitions"
	cfgKeyJSON        = "json"
	cfgKeyVerbose     = "verbose"
)

// loadConfig resolves settings from flags, PATHTEMPLATE_* environment and
// an optional YAML config file. A missing default config file is not an error.
func loadConfig(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDefinitions, []string{})
	v.SetDefault(cfgKeyJSON, false)
	v.SetDefault(cfgKeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{cfgKeyDefinitions, cfgKeyJSON, cfgKeyVerbose} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}

		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
