package cmd

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

var numGames int

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the computer play random games and report the results",
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

		results, err := autoplay(gameConfig, numGames)
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"games": numGames,
			"won":   results[game.Won],
			"lost":  results[game.Lost],
		}).Info("autoplay finished")
		fmt.Fprintf(cmd.OutOrStdout(), "won %d, lost %d\n", results[game.Won], results[game.Lost])
		return nil
	},
}

// autoplay plays n boards with the random director, returning the count per final state
func autoplay(gameConfig game.GameConfig, n int) (map[game.BoardState]int, error) {
	results := make(map[game.BoardState]int)
	for i := 0; i < n; i++ {
		board, err := gameConfig.CreateBoard()
		if err != nil {
			return nil, err
		}

		state := game.Play(board, &random.Director{Rand: rand.New(rand.NewSource(board.NextSeed()))})
		results[state]++
		gameConfig.Seed = board.NextSeed()
	}
	return results, nil
}

func init() {
	autoplayCmd.Flags().IntVarP(&numGames, "games", "n", 10, "Number of games to play")
	rootCmd.AddCommand(autoplayCmd)
}
