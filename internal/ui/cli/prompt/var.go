package prompt

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
)

var varCmd = &cobra.Command{
	Use:   "var",
	Short: "Manage a prompt's declared variables",
}

var varSetCmd = &cobra.Command{
	Use:   "set [prompt] [name] [default]",
	Short: "Change a variable's default value",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		p, err := st.FindPrompt(args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		name := args[1]
		found := false
		for _, v := range p.Variables {
			if v.Name == name {
				if !v.IsEditable {
					return fmt.Errorf("variable %q is not editable", name)
				}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("prompt %q declares no variable named %q", p.Title, name)
		}

		if err := st.UpdateVariableDefault(p.ID, name, args[2]); err != nil {
			return fmt.Errorf("failed to update variable: %w", err)
		}

		fmt.Printf("Set {{%s}} default to %q\n", name, args[2])
		return nil
	},
}

var varListCmd = &cobra.Command{
	Use:   "ls [prompt]",
	Short: "List a prompt's declared variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		p, err := st.FindPrompt(args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		if len(p.Variables) == 0 {
			fmt.Println("No declared variables")
			return nil
		}
		for _, v := range p.Variables {
			editable := ""
			if !v.IsEditable {
				editable = " (locked)"
			}
			fmt.Printf("{{%s}} = %q%s\n", v.Name, v.DefaultValue, editable)
		}
		return nil
	},
}

func init() {
	varCmd.AddCommand(varSetCmd, varListCmd)
}
