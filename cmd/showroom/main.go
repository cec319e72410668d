package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eringen/showroom"
)

// version is set at build time via ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "showroom",
	Short: "showroom - brochure websites backed by a headless CMS",
	Long: `showroom serves one brand's brochure website: landing gate and hero
slider, collection and project grids, product pages, team, contact and
certificate lookup, with content read from a GraphQL CMS.

Configuration comes from showroom.yaml, then .env, then SHOWROOM_*
environment variables.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the showroom version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "showroom %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "showroom.yaml", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd, sitemapCmd, brandsCmd, initCmd, versionCmd)
}

func loadConfig() (showroom.Config, error) {
	cfg, err := showroom.Load(configPath)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
