package folder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/store"
)

var (
	colorFlag  string
	iconFlag   string
	parentFlag string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		parentID := ""
		if parentFlag != "" {
			parent, err := st.FindFolder(parentFlag)
			if err != nil {
				return fmt.Errorf("failed to resolve parent folder: %w", err)
			}
			parentID = parent.ID
		}

		f, err := st.AddFolder(store.NewFolder{
			Name:     args[0],
			Color:    colorFlag,
			Icon:     iconFlag,
			ParentID: parentID,
		})
		if err != nil {
			return fmt.Errorf("failed to create folder: %w", err)
		}

		fmt.Printf("Created folder %q (%s)\n", f.Name, f.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&colorFlag, "color", "#3b82f6", "Display color")
	addCmd.Flags().StringVar(&iconFlag, "icon", "", "Display icon")
	addCmd.Flags().StringVar(&parentFlag, "parent", "", "Parent folder (id or name)")
}
