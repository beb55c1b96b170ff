package cmd

import (
	"strconv"

	"github.com/nfrund/ecoshare/cmd/ecoshare-cli/internal/output"
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/spf13/cobra"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Print the dashboard tiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		listing := output.Listing{
			Kind:    "tiles",
			Columns: []string{"id", "title", "path", "stat", "description"},
		}
		for _, t := range domain.Tiles() {
			description := t.Description
			if outputFormat != output.FormatJSON {
				description = output.Truncate(description, 40)
			}
			listing.Rows = append(listing.Rows, []string{
				strconv.Itoa(t.ID), t.Title, t.DestinationPath, t.StatLabel, description,
			})
		}
		return output.Write(cmd.OutOrStdout(), outputFormat, listing)
	},
}

func init() {
	rootCmd.AddCommand(tilesCmd)
}
