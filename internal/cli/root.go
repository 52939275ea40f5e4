// Package cli is the command-line front end of the gallery.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"portfolio-gallery/internal/catalogue"
	gallerysvc "portfolio-gallery/internal/service/gallery"
)

type app struct {
	cataloguePath string
	gallery       *gallerysvc.Service
}

// NewRootCmd builds the gallery command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the portfolio project catalogue",
		Long: `Gallery lists, searches and summarises the portfolio project catalogue.

By default the catalogue compiled into the binary is used. Pass --catalogue
or set CATALOGUE_FILE to read a YAML catalogue from disk instead.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return a.load()
		},
	}
	cmd.PersistentFlags().StringVar(&a.cataloguePath, "catalogue", "", "path to a YAML catalogue file")

	cmd.AddCommand(
		newSearchCmd(a),
		newShowCmd(a),
		newCategoriesCmd(a),
		newFeaturedCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
		newBrowseCmd(a),
	)
	return cmd
}

func (a *app) load() error {
	path := a.cataloguePath
	if path == "" {
		path = os.Getenv("CATALOGUE_FILE")
	}

	var (
		cat *catalogue.Catalogue
		err error
	)
	if path != "" {
		cat, err = catalogue.ReadFile(path)
	} else {
		cat, err = catalogue.Embedded()
	}
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}
	a.gallery = gallerysvc.New(cat)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
