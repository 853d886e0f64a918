/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace builds a configured token system for CLI commands.
package workspace

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"bennypowers.dev/gevanim/config"
	"bennypowers.dev/gevanim/defaults"
	"bennypowers.dev/gevanim/fs"
	"bennypowers.dev/gevanim/internal/logger"
	"bennypowers.dev/gevanim/system"
	"bennypowers.dev/gevanim/token"
)

// System constructs a DesignTokenSystem from the working directory's config
// file, viper-bound flag overrides, the built-in defaults (unless
// disabled), and any token files passed as arguments.
func System(fileArgs []string) (*system.DesignTokenSystem, error) {
	filesystem := fs.NewOSFileSystem()

	rootDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg := config.LoadOrDefault(filesystem, rootDir)
	applyFlagOverrides(cfg)

	sys := system.New(cfg)

	if !viper.GetBool("no-defaults") {
		if err := defaults.Seed(sys.Store()); err != nil {
			return nil, fmt.Errorf("seeding default tokens: %w", err)
		}
	}

	configured, err := cfg.ExpandFiles(filesystem, rootDir)
	if err != nil {
		return nil, err
	}

	// Configured files may legitimately be absent (fresh checkout); files
	// named on the command line may not.
	var paths []string
	for _, p := range configured {
		if !filesystem.Exists(p) {
			logger.Warn("skipping missing token file %s", p)
			continue
		}
		paths = append(paths, p)
	}
	paths = append(paths, fileArgs...)

	if err := sys.LoadFiles(filesystem, paths); err != nil {
		return nil, err
	}

	return sys, nil
}

// applyFlagOverrides lets CLI flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if viper.IsSet("prefix") {
		cfg.Prefix = viper.GetString("prefix")
	}
	if viper.IsSet("minify") {
		cfg.Minify = viper.GetBool("minify")
	}
	if viper.IsSet("dark") {
		cfg.DarkMode = viper.GetBool("dark")
	}
	if viper.IsSet("theme") {
		if _, err := token.ThemeFromString(viper.GetString("theme")); err == nil {
			cfg.Theme = viper.GetString("theme")
		}
	}
}
