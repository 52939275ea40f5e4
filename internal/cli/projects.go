package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/query"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		category string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "List projects matching a search term and category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := query.Query{Category: category}
			if len(args) == 1 {
				q.Text = args[0]
			}
			results := a.gallery.List(q)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			printProjects(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", query.AllCategories, "category to filter by")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project by its catalogue position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			p, err := a.gallery.Get(id)
			if err != nil {
				return err
			}
			links, err := a.gallery.Share(id)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					*domain.Project
					Twitter string `json:"shareTwitter"`
				}{p, links.Twitter})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%d %s [%s]\n", p.ID, p.Name, p.Category)
			fmt.Fprintf(out, "%s\n", p.OneLiner)
			fmt.Fprintf(out, "stack: %s\n", strings.Join(p.TechStack, ", "))
			fmt.Fprintf(out, "views: %d  rating: %.1f  featured: %t\n", p.Views, p.Rating, p.Featured)
			if p.Link != "" {
				fmt.Fprintf(out, "link: %s\n", p.Link)
				fmt.Fprintf(out, "share: %s\n", links.Twitter)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List selectable categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range a.gallery.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newFeaturedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List the featured projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printProjects(cmd.OutOrStdout(), a.gallery.Featured())
			return nil
		},
	}
}

func printProjects(w io.Writer, projects []domain.Project) {
	for _, p := range projects {
		fmt.Fprintf(w, "%3d  %-40s  %s\n", p.ID, p.Name, p.Category)
	}
	fmt.Fprintf(w, "%d projects\n", len(projects))
}
