package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimkit/internal/config"
	"github.com/zjrosen/vimkit/internal/paths"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("path")
		if path == "" {
			path = paths.LocalConfigPath
		}
		if err := config.WriteDefaultConfig(paths.ExpandHome(path)); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, ok := paths.ResolveConfig(cfgFile)
		if !ok {
			path = "(none, using defaults)"
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Change one setting, keeping comments",
	Example: `  vimkit config set chords.delete_timeout 1500ms
  vimkit config set theme.highlight "#FF8787"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, ok := paths.ResolveConfig(cfgFile)
		if !ok {
			path = paths.LocalConfigPath
		}
		if err := config.Set(path, args[0], args[1]); err != nil {
			return fmt.Errorf("updating %s: %w", path, err)
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)
		return err
	},
}

func init() {
	configInitCmd.Flags().String("path", "", "where to write (default: .vimkit/config.yaml)")
	configCmd.AddCommand(configInitCmd, configPathCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
