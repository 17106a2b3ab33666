package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/config"
	copyCmd "github.com/promptbox/promptbox/internal/ui/cli/copy"
	"github.com/promptbox/promptbox/internal/ui/cli/data"
	"github.com/promptbox/promptbox/internal/ui/cli/folder"
	"github.com/promptbox/promptbox/internal/ui/cli/prompt"
	searchCmd "github.com/promptbox/promptbox/internal/ui/cli/search"
)

var (
	logLevel       string
	logFile        string
	storageBackend string
	storagePath    string
)

var rootCmd = &cobra.Command{
	Use:               "promptbox",
	Short:             "Organize, fill, and copy reusable prompts",
	Long:              `A personal prompt library: folders, tags, template variables, and clipboard copy.`,
	DisableAutoGenTag: true,
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (defaults to stderr)")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "Storage backend (file or sqlite)")
	rootCmd.PersistentFlags().StringVar(&storagePath, "data-dir", "", "Data directory")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		if storageBackend != "" {
			overrides.StorageBackend = &storageBackend
		}
		if storagePath != "" {
			overrides.StoragePath = &storagePath
		}
		return appState.Initialize(overrides)
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Cleanup()
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		folder.FolderCmd,
		prompt.PromptCmd,
		copyCmd.CopyCmd,
		searchCmd.SearchCmd,
		data.DataCmd,
	)
}
