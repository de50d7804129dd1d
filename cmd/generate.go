package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a newly generated board as a YAML snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		gameConfig, err := cfg.GameConfig(logger)
		if err != nil {
			return err
		}

		board, err := gameConfig.CreateBoard()
		if err != nil {
			return err
		}

		out, err := board.Snapshot().Serialize()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
