package prompt

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/store"
)

var (
	editTitle    string
	editContent  string
	editFolder   string
	editTags     []string
	editShortcut string
	editVars     []string
)

var editCmd = &cobra.Command{
	Use:   "edit [prompt]",
	Short: "Update a prompt",
	Long: `Update a prompt. Only the flags you pass are changed; --tags and --var
replace the full tag list and variable list respectively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		p, err := st.FindPrompt(args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		upd := store.PromptUpdate{}
		changed := false
		if cmd.Flags().Changed("title") {
			upd.Title = &editTitle
			changed = true
		}
		if cmd.Flags().Changed("content") {
			upd.Content = &editContent
			changed = true
		}
		if cmd.Flags().Changed("folder") {
			f, err := st.FindFolder(editFolder)
			if err != nil {
				return fmt.Errorf("failed to find folder: %w", err)
			}
			upd.FolderID = &f.ID
			changed = true
		}
		if cmd.Flags().Changed("tags") {
			upd.Tags = &editTags
			changed = true
		}
		if cmd.Flags().Changed("shortcut") {
			upd.Shortcut = &editShortcut
			changed = true
		}
		if cmd.Flags().Changed("var") {
			variables, err := parseVarDecls(editVars)
			if err != nil {
				return err
			}
			upd.Variables = &variables
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to change; see --help for editable fields")
		}

		updated, err := st.UpdatePrompt(p.ID, upd)
		if err != nil {
			return fmt.Errorf("failed to update prompt: %w", err)
		}

		fmt.Printf("Updated prompt %q\n", updated.Title)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().StringVarP(&editFolder, "folder", "F", "", "New owning folder (id or name)")
	editCmd.Flags().StringSliceVar(&editTags, "tags", nil, "Replacement tag list")
	editCmd.Flags().StringVarP(&editShortcut, "shortcut", "s", "", "New shortcut")
	editCmd.Flags().StringArrayVar(&editVars, "var", nil, "Replacement variable list as name=default (repeatable)")
}
