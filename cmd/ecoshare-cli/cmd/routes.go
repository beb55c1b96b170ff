package cmd

import (
	"github.com/nfrund/ecoshare/cmd/ecoshare-cli/internal/output"
	"github.com/nfrund/ecoshare/internal/navigation"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the navigation table",
	Long: `Print every path the web client knows about, the screen it renders and
whether it only redirects. The dashboard is marked protected: it requires a login
when the server runs with REQUIRE_AUTH=true.

Examples:
  ecoshare-cli routes
  ecoshare-cli routes --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		listing := output.Listing{
			Kind:    "routes",
			Columns: []string{"path", "screen", "redirect", "protected"},
		}
		for _, r := range navigation.Default() {
			screen := string(r.Screen)
			if screen == "" {
				screen = "-"
			}
			redirect := r.RedirectTo
			if redirect == "" {
				redirect = "-"
			}
			protected := "no"
			if r.Protected {
				protected = "yes"
			}
			listing.Rows = append(listing.Rows, []string{r.Path, screen, redirect, protected})
		}
		return output.Write(cmd.OutOrStdout(), outputFormat, listing)
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
