package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the built-grid cache",
	}
	cmd.AddCommand(newCachePathCmd())
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Cache.cacheDir())
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached grids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}
			dir := cfg.Cache.cacheDir()
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("cache directory %s does not exist, nothing to clear", dir)
				return nil
			}
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("clear cache %s: %w", dir, err)
			}
			printSuccess("Cleared cache at %s", dir)
			return nil
		},
	}
}
