package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/finreport/internal/buildinfo"
	"github.com/cleared-dev/finreport/internal/config"
)

type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "finreport",
		Short:   "Categorized reports from bank CSV exports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.FileName, "path to finreport.yaml")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand(g))
	rootCmd.AddCommand(newRulesCommand(g))
	rootCmd.AddCommand(newServeCommand(g))

	return rootCmd
}
