package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/they4kman/gosweep/config"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/server"
)

var (
	v          = config.New()
	configPath string
	difficulty = game.Medium
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Serve a browser-playable Minesweeper",
	Long: `gosweep serves a Minesweeper board engine over HTTP for a browser
front end to render.

Run with no arguments to serve medium boards on :8080
	gosweep

Pick a preset, or a custom board
	gosweep --difficulty hard
	gosweep --rows 20 --cols 30 --mines 99
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		gameConfig, err := cfg.GameConfig(logger)
		if err != nil {
			return err
		}

		if logger.IsLevelEnabled(logrus.DebugLevel) {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		srv := server.New(gameConfig, cfg.MaxCells, logger)
		logger.WithFields(logrus.Fields{
			"addr":       cfg.Addr,
			"difficulty": gameConfig.Difficulty,
		}).Info("serving")
		return http.ListenAndServe(cfg.Addr, srv.Router())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig merges flags, env and the config file into a Config and its logger
func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (d *difficultyValue) String() string {
	return game.Difficulty(*d).String()
}

func (d *difficultyValue) Set(value string) error {
	parsed, err := game.ParseDifficulty(value)
	if err != nil {
		return err
	}
	*d = difficultyValue(parsed)
	return nil
}

func (d *difficultyValue) Type() string {
	return "difficulty"
}

func bindFlags(cmd *cobra.Command, v *viper.Viper, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	flags.Var(newDifficultyValue(game.Medium, &difficulty), "difficulty", `Board preset:
easy: 8x10, 10 mines
medium: 10x12, 15 mines
hard: 12x16, 20 mines`)
	flags.IntP("rows", "h", 0, "Rows of a custom board, overriding --difficulty")
	flags.IntP("cols", "w", 0, "Columns of a custom board, overriding --difficulty")
	flags.IntP("mines", "m", 0, "Mines of a custom board, overriding --difficulty")
	flags.Int64P("seed", "s", 0, "Seed for mine placement (0 seeds from the clock)")
	flags.String("log-level", "info", "Log level")
	flags.String("log-format", "text", "Log format: text or json")
	rootCmd.Flags().String("addr", ":8080", "Address to serve on")
	rootCmd.Flags().Int("max-cells", server.DefaultMaxCells, "Largest custom board a client may request, in cells")

	bindFlags(rootCmd, v, "difficulty", "rows", "cols", "mines", "seed", "log-level", "log-format")
	for _, name := range []string{"addr", "max-cells"} {
		if err := v.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}
