package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
)

var showCmd = &cobra.Command{
	Use:   "show [prompt]",
	Short: "Show a prompt's details and content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		p, err := st.FindPrompt(args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		fmt.Printf("%s\n", p.Title)
		fmt.Printf("ID:       %s\n", p.ID)
		if name := folderName(st, p.FolderID); name != "" {
			fmt.Printf("Folder:   %s\n", name)
		}
		if len(p.Tags) > 0 {
			fmt.Printf("Tags:     %s\n", strings.Join(p.Tags, ", "))
		}
		if p.Shortcut != "" {
			fmt.Printf("Shortcut: %s\n", p.Shortcut)
		}
		if p.Favorite {
			fmt.Println("Favorite: yes")
		}
		fmt.Printf("Created:  %s\n", p.CreatedAt.Format(time.RFC822))
		fmt.Printf("Updated:  %s\n", p.UpdatedAt.Format(time.RFC822))

		if len(p.Variables) > 0 {
			fmt.Println("\nVariables:")
			for _, v := range p.Variables {
				fmt.Printf("  {{%s}} = %q\n", v.Name, v.DefaultValue)
			}
		}

		fmt.Printf("\n%s\n", p.Content)
		return nil
	},
}
