package prompt

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
)

var favCmd = &cobra.Command{
	Use:   "fav [prompt]",
	Short: "Toggle a prompt's favorite flag",
	Long: `Toggle a prompt's favorite flag. Favoriting moves the prompt into the
built-in Favorites folder; unfavoriting leaves it there.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		p, err := st.FindPrompt(args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		updated, err := st.ToggleFavorite(p.ID)
		if err != nil {
			return fmt.Errorf("failed to toggle favorite: %w", err)
		}

		if updated.Favorite {
			fmt.Printf("Favorited %q\n", updated.Title)
		} else {
			fmt.Printf("Unfavorited %q\n", updated.Title)
		}
		return nil
	},
}
