package prompt

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/domain"
	"github.com/promptbox/promptbox/internal/store"
	"github.com/promptbox/promptbox/internal/ui/cli/format"
)

var (
	folderFlag    string
	sortFlag      string
	directionFlag string
	favoritesFlag bool
	forceFlag     bool
)

var PromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage prompts",
}

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		st := app.Store

		prompts := st.Prompts()
		if folderFlag != "" {
			f, err := st.FindFolder(folderFlag)
			if err != nil {
				return fmt.Errorf("failed to find folder: %w", err)
			}
			prompts = st.PromptsInFolder(f.ID)
		}
		if favoritesFlag {
			kept := prompts[:0]
			for _, p := range prompts {
				if p.Favorite {
					kept = append(kept, p)
				}
			}
			prompts = kept
		}

		sortName := app.Config.Sort.Type
		if sortFlag != "" {
			sortName = sortFlag
		}
		sortType, err := store.ParseSortType(sortName)
		if err != nil {
			return err
		}
		dirName := app.Config.Sort.Direction
		if directionFlag != "" {
			dirName = directionFlag
		}
		sortDir, err := store.ParseSortDirection(dirName)
		if err != nil {
			return err
		}
		prompts = store.SortPrompts(prompts, sortType, sortDir)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tFOLDER\tTAGS\tFAV\tUPDATED")
		for _, p := range prompts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				format.ShortID(p.ID),
				format.Truncate(p.Title, 40),
				folderName(st, p.FolderID),
				strings.Join(p.Tags, ","),
				format.Mark(p.Favorite),
				p.UpdatedAt.Format(time.RFC822),
			)
		}
		w.Flush()

		return nil
	},
}

func folderName(st *store.Store, folderID string) string {
	if folderID == "" {
		return ""
	}
	if f, ok := st.GetFolder(folderID); ok {
		return f.Name
	}
	return folderID
}

// parseVarDecls turns repeated name=default flags into declared variables,
// preserving flag order.
func parseVarDecls(pairs []string) ([]domain.Variable, error) {
	out := make([]domain.Variable, 0, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid variable %q, expected name=default", pair)
		}
		out = append(out, domain.Variable{Name: name, DefaultValue: value, IsEditable: true})
	}
	return out, nil
}

func init() {
	listCmd.Flags().StringVarP(&folderFlag, "folder", "F", "", "Only prompts in this folder (id or name)")
	listCmd.Flags().StringVar(&sortFlag, "sort", "", "Sort by name, date, or favorites")
	listCmd.Flags().StringVar(&directionFlag, "direction", "", "Sort direction (asc or desc)")
	listCmd.Flags().BoolVar(&favoritesFlag, "favorites", false, "Only favorited prompts")

	PromptCmd.AddCommand(listCmd, addCmd, editCmd, showCmd, deleteCmd, favCmd, varCmd)
}
