package search

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/search"
	"github.com/promptbox/promptbox/internal/ui/cli/format"
)

var limitFlag int

var SearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy-search prompts and folders",
	Long:  `Fuzzy-search prompt titles, tags, shortcuts, and content, plus folder names.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store
		query := strings.Join(args, " ")

		prompts := search.Prompts(st.Prompts(), query)
		folders := search.Folders(st.Folders(), query)
		if limitFlag > 0 && len(prompts) > limitFlag {
			prompts = prompts[:limitFlag]
		}

		if len(prompts) == 0 && len(folders) == 0 {
			fmt.Println("No matches")
			return nil
		}

		if len(prompts) > 0 {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTAGS\tCONTENT")
			for _, r := range prompts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					format.ShortID(r.Prompt.ID),
					format.Truncate(r.Prompt.Title, 40),
					strings.Join(r.Prompt.Tags, ","),
					format.Truncate(format.FirstLine(r.Prompt.Content), 48),
				)
			}
			w.Flush()
		}

		if len(folders) > 0 {
			fmt.Println("\nFolders:")
			for _, r := range folders {
				fmt.Printf("  %s  %s\n", format.ShortID(r.Folder.ID), r.Folder.Name)
			}
		}

		return nil
	},
}

func init() {
	SearchCmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Limit the number of prompt matches (0 for all)")
}
