package folder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/store"
)

var (
	editName  string
	editColor string
	editIcon  string
)

var editCmd = &cobra.Command{
	Use:   "edit [folder]",
	Short: "Update a folder's name, color, or icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		f, err := st.FindFolder(args[0])
		if err != nil {
			return fmt.Errorf("failed to find folder: %w", err)
		}

		upd := store.FolderUpdate{}
		if cmd.Flags().Changed("name") {
			upd.Name = &editName
		}
		if cmd.Flags().Changed("color") {
			upd.Color = &editColor
		}
		if cmd.Flags().Changed("icon") {
			upd.Icon = &editIcon
		}
		if upd.Name == nil && upd.Color == nil && upd.Icon == nil {
			return fmt.Errorf("nothing to change; pass --name, --color, or --icon")
		}

		updated, err := st.UpdateFolder(f.ID, upd)
		if err != nil {
			return fmt.Errorf("failed to update folder: %w", err)
		}

		fmt.Printf("Updated folder %q\n", updated.Name)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVar(&editColor, "color", "", "New color")
	editCmd.Flags().StringVar(&editIcon, "icon", "", "New icon")
}
