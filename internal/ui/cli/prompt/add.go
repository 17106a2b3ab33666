package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/domain"
	"github.com/promptbox/promptbox/internal/store"
	"github.com/promptbox/promptbox/internal/template"
)

var (
	addTitle      string
	addContent    string
	addFolder     string
	addTags       []string
	addShortcut   string
	addVars       []string
	addDetectVars bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a prompt",
	Long: `Create a prompt. Content comes from --content or piped stdin.
Declared variables are authored with repeated --var name=default flags;
--detect-vars declares any {{placeholder}} found in the content that
was not declared explicitly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		content := addContent
		if content == "" {
			stat, _ := os.Stdin.Stat()
			if (stat.Mode() & os.ModeCharDevice) == 0 {
				bytes, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read piped input: %w", err)
				}
				content = strings.TrimSpace(string(bytes))
			}
		}
		if content == "" {
			return fmt.Errorf("no content provided; use --content or pipe it in")
		}

		folderID := ""
		if addFolder != "" {
			f, err := st.FindFolder(addFolder)
			if err != nil {
				return fmt.Errorf("failed to find folder: %w", err)
			}
			folderID = f.ID
		}

		variables, err := parseVarDecls(addVars)
		if err != nil {
			return err
		}
		if addDetectVars {
			declared := make(map[string]bool, len(variables))
			for _, v := range variables {
				declared[v.Name] = true
			}
			for _, name := range template.Placeholders(content) {
				if !declared[name] {
					variables = append(variables, domain.Variable{Name: name, IsEditable: true})
				}
			}
		}

		p, err := st.AddPrompt(store.NewPrompt{
			Title:     addTitle,
			Content:   content,
			FolderID:  folderID,
			Tags:      addTags,
			Variables: variables,
			Shortcut:  addShortcut,
		})
		if err != nil {
			return fmt.Errorf("failed to create prompt: %w", err)
		}

		fmt.Printf("Created prompt %q (%s)\n", p.Title, p.ID)
		if undeclared := missingDeclarations(p); len(undeclared) > 0 {
			fmt.Printf("Note: content references undeclared placeholders: %s\n",
				strings.Join(undeclared, ", "))
		}
		return nil
	},
}

// missingDeclarations lists placeholders in the content with no declared
// variable. They render literally until declared.
func missingDeclarations(p domain.Prompt) []string {
	declared := make(map[string]bool, len(p.Variables))
	for _, v := range p.Variables {
		declared[v.Name] = true
	}
	var missing []string
	for _, name := range template.Placeholders(p.Content) {
		if !declared[name] {
			missing = append(missing, "{{"+name+"}}")
		}
	}
	return missing
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Prompt title (required)")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Prompt content; may contain {{variables}}")
	addCmd.Flags().StringVarP(&addFolder, "folder", "F", "", "Owning folder (id or name)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Comma-separated tags")
	addCmd.Flags().StringVarP(&addShortcut, "shortcut", "s", "", "Quick-access shortcut, e.g. /email-reply")
	addCmd.Flags().StringArrayVar(&addVars, "var", nil, "Declare a variable as name=default (repeatable)")
	addCmd.Flags().BoolVar(&addDetectVars, "detect-vars", false, "Declare placeholders found in the content")
	_ = addCmd.MarkFlagRequired("title")
}
