package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "Print the catalog contents",
	Long:    `Print every documented component, hook, type, utility, example, and topic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()
		out := cmd.OutOrStdout()

		sections := []struct {
			title string
			names []string
		}{
			{"Components", cat.ComponentNames()},
			{"Hooks", cat.HookNames()},
			{"Types", cat.TypeNames()},
			{"Utilities", cat.UtilityNames()},
			{"Examples", cat.ExampleIDs()},
			{"Docs topics", cat.TopicNames()},
		}

		for _, s := range sections {
			fmt.Fprintf(out, "%s (%d):\n", s.title, len(s.names))
			fmt.Fprintf(out, "  %s\n\n", strings.Join(s.names, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
