// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-parser/internal/batch"
	"github.com/pdiddy/recipe-parser/internal/store"
	"github.com/pdiddy/recipe-parser/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [input-dir] [output-dir]",
	Short: "Parse a directory of recipe documents",
	Long: `Parse reads every .txt document in input-dir and writes one file per
accepted recipe to output-dir, named by recipe ID. Documents that are not
recipes are reported and skipped; they never stop the run.

Both directories must exist. They can also be set with parse.input_dir and
parse.output_dir in the config file.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := parseConfig(args)
	out := cmd.OutOrStdout()

	if cfg.InputDir == "" || cfg.OutputDir == "" {
		fmt.Fprintln(out, "Requires 2 args: [InputDir] [OutputDir]")
		return fmt.Errorf("input and output directories required")
	}
	if err := validateDirs(out, cfg.InputDir, cfg.OutputDir); err != nil {
		return err
	}

	opts := batch.Options{Out: out, Logger: logger}
	if useStore, _ := cmd.Flags().GetBool("store"); useStore {
		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()
		opts.Store = s
	}

	summary, err := batch.Run(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Recipe Parsing Complete. Files output: %d\n", summary.Written)
	return nil
}

// parseConfig merges positional arguments over the parse.* settings.
func parseConfig(args []string) types.ParseConfig {
	cfg := types.ParseConfig{
		InputDir:  viper.GetString("parse.input_dir"),
		OutputDir: viper.GetString("parse.output_dir"),
		Extension: viper.GetString("parse.extension"),
		Format:    types.OutputFormat(viper.GetString("parse.format")),
		Workers:   viper.GetInt("parse.workers"),
	}
	if len(args) > 0 {
		cfg.InputDir = args[0]
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}
	return cfg
}

// validateDirs reports every path that is not an existing directory.
func validateDirs(w io.Writer, inputDir, outputDir string) error {
	invalid := false
	if !isDir(inputDir) {
		fmt.Fprintf(w, "Input path not valid - %s\n", inputDir)
		invalid = true
	}
	if !isDir(outputDir) {
		fmt.Fprintf(w, "Output path not valid - %s\n", outputDir)
		invalid = true
	}
	if invalid {
		return fmt.Errorf("invalid directories")
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func init() {
	parseCmd.Flags().String("format", "xml", "output format: xml, yaml, or json")
	parseCmd.Flags().Int("workers", 0, "documents classified concurrently (0 = one per CPU)")
	parseCmd.Flags().String("ext", "txt", "extension of the recipe documents to read")
	parseCmd.Flags().Bool("store", false, "also ingest accepted recipes into the SQLite database")

	viper.BindPFlag("parse.format", parseCmd.Flags().Lookup("format"))
	viper.BindPFlag("parse.workers", parseCmd.Flags().Lookup("workers"))
	viper.BindPFlag("parse.extension", parseCmd.Flags().Lookup("ext"))

	rootCmd.AddCommand(parseCmd)
}
