package folder

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/store"
	"github.com/promptbox/promptbox/internal/ui/cli/format"
)

var (
	sortFlag      string
	directionFlag string
	forceFlag     bool
)

var FolderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage folders",
}

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		st := app.Store

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

		folders := store.SortFolders(st.Folders(), sortType, sortDir)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tICON\tPROMPTS\tSYSTEM")
		for _, f := range folders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				format.ShortID(f.ID),
				f.Name,
				f.Icon,
				len(st.PromptsInFolder(f.ID)),
				format.Mark(f.IsSystem),
			)
		}
		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&sortFlag, "sort", "", "Sort by name, date, or favorites")
	listCmd.Flags().StringVar(&directionFlag, "direction", "", "Sort direction (asc or desc)")

	FolderCmd.AddCommand(listCmd, addCmd, editCmd, deleteCmd)
}
