// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-parser/internal/api"
	"github.com/pdiddy/recipe-parser/internal/store"
	"github.com/pdiddy/recipe-parser/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parser and the recipe database over HTTP",
	Long: `Serve starts an HTTP server with these routes:

  POST /recipes/parse   parse a plain-text document (?store=1 also stores it)
  GET  /recipes         search stored recipes (?q=&author=&ingredient=&limit=)
  GET  /recipes/{id}    fetch one stored recipe
  GET  /healthz         liveness

With --no-store only parsing is served.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.ServeConfig{
			Addr:         viper.GetString("serve.addr"),
			MaxBodyBytes: viper.GetInt64("serve.max_body_bytes"),
		}

		var recipes api.Recipes
		if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
			s, err := store.NewStore(storeConfig())
			if err != nil {
				return err
			}
			defer s.Close()
			recipes = s
		}

		return api.NewServer(cfg, recipes, logger).ListenAndServe(cmd.Context(), cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int64("max-body-bytes", api.DefaultMaxBodyBytes, "largest accepted document in bytes")
	serveCmd.Flags().Bool("no-store", false, "serve parsing only, without the recipe database")

	viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("serve.max_body_bytes", serveCmd.Flags().Lookup("max-body-bytes"))

	rootCmd.AddCommand(serveCmd)
}
