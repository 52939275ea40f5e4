package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"portfolio-gallery/internal/aggregate"
)

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show technology and category distributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tech := a.gallery.Technologies()
			cats := a.gallery.CategoryCounts()
			summary := a.gallery.Summary()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"summary":      summary,
					"technologies": tech,
					"categories":   cats,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d projects · %d categories · %d featured · %d views\n\n",
				summary.Projects, summary.Categories, summary.Featured, summary.Views)
			fmt.Fprintln(out, distributionTable("Technology", tech))
			fmt.Fprintln(out, distributionTable("Category", cats))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func distributionTable(label string, d aggregate.Distribution) string {
	rows := make([][]string, len(d.Labels))
	for i, l := range d.Labels {
		rows[i] = []string{l, strconv.Itoa(d.Counts[i])}
	}
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(label, "Projects").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}
