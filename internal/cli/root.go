package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mintapp-labs/mintapp/internal/bootstrap"
	"github.com/mintapp-labs/mintapp/internal/branding"
	"github.com/mintapp-labs/mintapp/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` bootstraps a new project. It asks for a project name and kind,
creates the project directory with an initial package.json, installs the
versioned ` + branding.DelegatePackage() + ` package, and hands control to it.
All real scaffolding logic lives in that package, fetched fresh on every run,
so this launcher itself rarely needs updating.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if !cmd.Flags().Changed("verbose") {
			verbose = config.VerboseDefault()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		runner := bootstrap.New(cwd, verbose, buildVersion, config.NPMBin())
		return runner.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Stream verbose output from the package install")
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code. A successful handoff exits 0 unless the
// delegate itself failed, in which case its code is adopted.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err)

	var exitErr *bootstrap.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
