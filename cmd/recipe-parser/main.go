// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recipe-parser CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-parser/internal/logging"
	"github.com/pdiddy/recipe-parser/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log.* settings before any subcommand runs.
var (
	logger       = slog.Default()
	closeLogFile = func() error { return nil }
)

// rootCmd is the base command for the recipe-parser CLI.
var rootCmd = &cobra.Command{
	Use:   "recipe-parser",
	Short: "Parse plain-text recipes into structured records",
	Long: `recipe-parser reads plain-text recipe documents and recovers a
structured record from each: identifier, title, author, creation date,
lead text, ingredients, and method steps.

parse converts a directory of documents into one XML, YAML, or JSON file
per recipe. store keeps accepted recipes in a SQLite database for lookup
and search, and serve exposes parsing and the store over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, closeFn, err := logging.New(logConfig(), os.Stderr)
		if err != nil {
			return err
		}
		logger, closeLogFile = l, closeFn
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogFile()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recipe-parser.yaml or ~/.config/recipe-parser/recipe-parser.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-file", "", "also append JSON log records to this file")
	rootCmd.PersistentFlags().String("db", "", "SQLite recipe database (default: recipes.db)")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recipe-parser")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recipe-parser"))
		}
	}

	viper.SetEnvPrefix("RECIPE_PARSER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level: viper.GetString("log.level"),
		File:  viper.GetString("log.file"),
	}
}

func storeConfig() types.StoreConfig {
	return types.StoreConfig{
		Path:       viper.GetString("store.path"),
		MaxResults: viper.GetInt("store.max_results"),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
