package copy

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/template"
	"github.com/promptbox/promptbox/internal/ui/tui/fill"
)

var (
	varFlags        []string
	fillFlag        bool
	noClipboardFlag bool
)

var CopyCmd = &cobra.Command{
	Use:   "copy [prompt]",
	Short: "Render a prompt and copy it to the clipboard",
	Long: `Render a prompt with its variables filled in and copy the result to the
clipboard. The prompt is resolved by id, id prefix, or shortcut. Values come
from --var name=value flags, or from an interactive dialog with --fill;
anything unset falls back to the variable defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		p, err := st.FindPrompt(args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		overrides := make(map[string]string)
		for _, pair := range varFlags {
			name, value, found := strings.Cut(pair, "=")
			if !found || name == "" {
				return fmt.Errorf("invalid variable %q, expected name=value", pair)
			}
			overrides[name] = value
		}

		if fillFlag {
			filled, canceled, err := fill.Run(p)
			if err != nil {
				return err
			}
			if canceled {
				fmt.Println("Operation cancelled")
				return nil
			}
			// Explicit --var flags win over dialog values.
			for name, value := range overrides {
				filled[name] = value
			}
			overrides = filled
		}

		rendered := template.Render(p.Content, p.Variables, overrides)

		if noClipboardFlag {
			fmt.Print(rendered)
			if !strings.HasSuffix(rendered, "\n") {
				fmt.Println()
			}
			return nil
		}

		if err := clipboard.WriteAll(rendered); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard unavailable (%v), printing instead:\n", err)
			fmt.Println(rendered)
			return nil
		}

		fmt.Printf("Copied %q to clipboard\n", p.Title)
		return nil
	},
}

func init() {
	CopyCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Set a variable as name=value (repeatable)")
	CopyCmd.Flags().BoolVar(&fillFlag, "fill", false, "Fill variables interactively")
	CopyCmd.Flags().BoolVar(&noClipboardFlag, "no-clipboard", false, "Print the rendered prompt instead of copying")
}
