package cmd

import (
	"strings"

	"github.com/nfrund/ecoshare/cmd/ecoshare-cli/internal/output"
	"github.com/nfrund/ecoshare/internal/activity"
	"github.com/nfrund/ecoshare/internal/pubsub"
	"github.com/spf13/cobra"
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Print the published event topics",
	Long: `Print the events the web client publishes on its in-memory bus, with the
payload type and fields of each.

Examples:
  ecoshare-cli topics
  ecoshare-cli topics --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		listing := output.Listing{
			Kind:    "topics",
			Columns: []string{"name", "payload", "fields", "description"},
		}
		for _, info := range eventTopics() {
			listing.Rows = append(listing.Rows, []string{
				info.Name, info.PayloadType, strings.Join(info.PayloadFields, ","), info.Description,
			})
		}
		return output.Write(cmd.OutOrStdout(), outputFormat, listing)
	},
}

// eventTopics lists the catalogue once the auth events are defined.
func eventTopics() []pubsub.TopicInfo {
	_ = activity.TopicLoginSucceeded
	return pubsub.Topics()
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
