package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/they4kman/termsweep/config"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/logging"
	"github.com/they4kman/termsweep/scores"
	"github.com/they4kman/termsweep/ui"
	"golang.org/x/sync/errgroup"
)

// Events waiting for the game loop; key presses beyond this block the
// listener until the loop catches up
const eventBufferSize = 16

var (
	configPath   string
	snapshotPath string
	difficulty   = game.Easy
	mode         = game.Classic
)

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a Minesweeper game played in the terminal, with the
keyboard.

Run with no arguments and pick a difficulty on the welcome screen
	termsweep

Start a hard game right away
	termsweep --difficulty hard

Use the director flag to make the computer play for you
	termsweep --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cfg, cmd.Flags().Changed("difficulty"))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (difficultyVal *difficultyValue) String() string {
	return game.Difficulty(*difficultyVal).String()
}

func (difficultyVal *difficultyValue) Set(value string) error {
	parsed, err := game.ParseDifficulty(value)
	if err != nil {
		return err
	}
	*difficultyVal = difficultyValue(parsed)
	return nil
}

func (difficultyVal *difficultyValue) Type() string {
	return "game.Difficulty"
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.GameMode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	parsed, err := game.ParseGameMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(parsed)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to the configuration file")
	flags.Var(newDifficultyValue(game.Easy, &difficulty), "difficulty", `Start a game right away instead of showing the welcome screen.
easy: 9x9, 10 mines
medium: 16x16, 32 mines
hard: 30x16, 60 mines`)
	flags.Var(newGameModeValue(game.Classic, &mode), "mode", `Game mode, controlling behaviour of the first selected cell.
win7: all cells surrounding the first-selected cell are cleared of mines (first selection never loses)
classic: mines are left as is (first selection can lose the game)`)
	flags.Bool("cascade", false, "Open connected empty cells when an empty cell is selected")
	flags.Int64P("seed", "s", 0, "Seed for mine layouts (0 picks one from the clock)")
	flags.StringP("director", "d", "", "Make the computer play: random or constraint")
	flags.StringVar(&snapshotPath, "snapshot", "", "Play the board saved in this snapshot file first")
	flags.String("snapshots-dir", "", "Directory to save finished boards to")
	flags.String("scores", "", "Path to the scoreboard file")
	flags.String("log-file", "", "File to write logs to")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
}

// loadConfig reads the configuration file and lays the command line flags
// over it
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode.String()
	}
	if flags.Changed("cascade") {
		cfg.Cascade, _ = flags.GetBool("cascade")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("director") {
		cfg.Director, _ = flags.GetString("director")
	}
	if flags.Changed("snapshots-dir") {
		cfg.SnapshotsDir, _ = flags.GetString("snapshots-dir")
	}
	if flags.Changed("scores") {
		cfg.ScoresFile, _ = flags.GetString("scores")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	return cfg, cfg.Validate()
}

func run(cfg config.Config, startNow bool) error {
	if _, err := logging.Setup(logging.Config{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	}); err != nil {
		return err
	}
	logging.Log.WithFields(cfg.Fields()).Info("configuration loaded")

	scoreboard, err := openScoreboard(cfg.ScoresFile)
	if err != nil {
		return err
	}

	gameConfig, err := newGameConfig(cfg, scoreboard)
	if err != nil {
		return err
	}

	theme, err := ui.NewTheme(cfg.Theme)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to initialize screen: %w", err)
	}

	var best ui.BestTimeFunc
	if scoreboard != nil {
		best = scoreboard.Best
	}
	renderer := ui.NewRenderer(screen, theme, best)
	listener := ui.NewInputListener(screen)

	controller := game.NewController(gameConfig)
	if startNow {
		controller.Handle(game.DifficultyEvent(difficulty))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return play(ctx, screen, controller, renderer, listener, eventBufferSize)
}

// play runs the input listener and the game loop until the loop returns. The
// screen is finalised on the way out.
func play(ctx context.Context, screen tcell.Screen, controller *game.Controller, renderer game.Renderer, listener *ui.InputListener, bufferSize int) error {
	events := make(chan game.Event, bufferSize)
	group, ctx := errgroup.WithContext(ctx)
	ctx, stop := context.WithCancel(ctx)

	group.Go(func() error {
		// Stopping releases a listener blocked on a full channel; finalising
		// the screen releases one blocked polling
		defer screen.Fini()
		defer stop()
		return controller.Run(ctx, events, renderer)
	})
	group.Go(func() error {
		return listener.Listen(ctx, events)
	})

	return group.Wait()
}

func openScoreboard(path string) (*scores.Scoreboard, error) {
	if path == "" {
		return nil, nil
	}
	scoreboard, err := scores.Open(path)
	if err != nil {
		return nil, err
	}
	return scoreboard, nil
}

func newGameConfig(cfg config.Config, scoreboard *scores.Scoreboard) (game.GameConfig, error) {
	gameConfig := game.NewGameConfig()
	gameConfig.Mode = cfg.GameMode()
	gameConfig.Cascade = cfg.Cascade
	gameConfig.Seed = cfg.Seed

	tick, err := cfg.Tick()
	if err != nil {
		return gameConfig, err
	}
	gameConfig.TickInterval = tick

	switch cfg.Director {
	case "random":
		gameConfig.Director = random.New(cfg.Seed)
	case "constraint":
		gameConfig.Director = constraint.New(cfg.Seed)
	}

	if snapshotPath != "" {
		snapshot, err := game.LoadSnapshotFile(snapshotPath)
		if err != nil {
			return gameConfig, err
		}
		gameConfig.Snapshot = snapshot
	}

	gameConfig.OnGameEnd = newGameEndHandler(cfg.SnapshotsDir, scoreboard)
	return gameConfig, nil
}
