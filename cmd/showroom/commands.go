package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/showroom"
	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/scaffold"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Fetch the product list and print sitemap.xml",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		app, err := showroom.New(cfg, showroom.DefaultViews())
		if err != nil {
			return err
		}
		defer app.Close()
		return app.Sitemap(cmd.Context(), cmd.OutOrStdout())
	},
}

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List the built-in brand presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tNAME\tLOCALE\tROUTES")
		for _, key := range brand.Keys() {
			b, _ := brand.Lookup(key)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", b.Key, b.Name, b.Locale, len(b.Nav))
		}
		_ = w.Flush()
	},
}

var (
	initBrand    string
	initURL      string
	initEndpoint string
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter showroom.yaml and .env.example",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if _, ok := brand.Lookup(initBrand); !ok {
			return fmt.Errorf("unknown brand %q", initBrand)
		}
		created, err := scaffold.Write(dir, scaffold.Data{
			Brand:    initBrand,
			URL:      initURL,
			Endpoint: initEndpoint,
		})
		for _, p := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "  created %s\n", p)
		}
		return err
	},
}

func init() {
	initCmd.Flags().StringVar(&initBrand, "brand", brand.HCFurniture, "brand preset key")
	initCmd.Flags().StringVar(&initURL, "url", "http://localhost:3000", "canonical site URL")
	initCmd.Flags().StringVar(&initEndpoint, "cms", "http://localhost:8080/graphql", "CMS GraphQL endpoint")
}
