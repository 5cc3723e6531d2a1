package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintapp-labs/mintapp/internal/branding"
	"github.com/mintapp-labs/mintapp/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage launcher settings",
	Long: `Read and write launcher configuration stored at ~/` + branding.HomeDir() + `/config.yaml.

Recognized keys:
  ` + config.KeyNPMBin + `    Package-manager executable used to fetch ` + branding.DelegatePackage() + ` (default: npm)
  ` + config.KeyVerbose + `    Default for the --verbose flag

Values can also be overridden per invocation through ` + branding.EnvVar("*") + ` environment variables.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		value := config.Get(args[0])
		fmt.Println(value)
		return nil
	},
}
