package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reqlens/srsbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .srsbot.yml configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists", cfgFile)
		}
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
