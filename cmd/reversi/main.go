package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cbodonnell/reversi/pkg/agents"
	"github.com/cbodonnell/reversi/pkg/game"
	"github.com/cbodonnell/reversi/pkg/log"
	"github.com/cbodonnell/reversi/pkg/queue"
	"github.com/cbodonnell/reversi/pkg/repositories"
	"github.com/cbodonnell/reversi/pkg/serialize"
	"github.com/cbodonnell/reversi/pkg/state"
	"github.com/cbodonnell/reversi/pkg/workers"
)

const (
	boardWidth  = 8
	boardHeight = 8
)

func main() {
	store := flag.String("store", "file", "Save slot store: file, sqlite or postgres")
	savePath := flag.String("save", "reversi.save", "Path to the save file (file store; use a .zst extension for compression)")
	sqlitePath := flag.String("sqlite-path", "reversi.db", "Path to the database file (sqlite store)")
	darkMode := flag.String("dark", "manual", "Dark player mode: manual or auto")
	lightMode := flag.String("light", "auto", "Light player mode: manual or auto")
	autoDelay := flag.Duration("auto-delay", 500*time.Millisecond, "Pause before an automatic player moves")
	freshGame := flag.Bool("new", false, "Start a new game, discarding any saved one")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	dark, err := parsePlayerMode(*darkMode)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse dark player mode: %v", err))
	}
	light, err := parsePlayerMode(*lightMode)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse light player mode: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repository, err := openRepository(ctx, *store, *savePath, *sqlitePath)
	if err != nil {
		panic(fmt.Sprintf("Failed to open %s repository: %v", *store, err))
	}
	defer repository.Close(ctx)

	gameState := loadOrNewGame(ctx, repository, dark, light, *freshGame)
	stateManager := state.NewInMemoryStateManager(gameState)

	eventQueue := queue.NewInMemoryQueue(64)

	saveStateChan := make(chan workers.SaveStateRequest, 16)
	saveWorker := workers.NewSaveStateWorker(workers.NewSaveStateWorkerOptions{
		Repository:    repository,
		SaveStateChan: saveStateChan,
		StateManager:  stateManager,
		Interval:      10 * time.Second,
	})
	go saveWorker.Start(ctx)

	driver := NewDriver(NewDriverOptions{
		StateManager:   stateManager,
		EventQueue:     eventQueue,
		SaveStateChan:  saveStateChan,
		ManualAgent:    agents.NewManualAgent(promptMove(os.Stdin, os.Stdout)),
		AutomaticAgent: agents.NewRandomAgent(time.Now().UnixNano()),
		AutoDelay:      *autoDelay,
		Out:            os.Stdout,
	})

	if err := driver.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Info("Interrupted")
			return
		}
		log.Error("Driver exited: %v", err)
		os.Exit(1)
	}
}

func parsePlayerMode(mode string) (game.PlayerMode, error) {
	switch mode {
	case "manual":
		return game.PlayerModeManual, nil
	case "auto", "automatic":
		return game.PlayerModeAutomatic, nil
	default:
		return 0, fmt.Errorf("unknown player mode: %s", mode)
	}
}

func openRepository(ctx context.Context, store, savePath, sqlitePath string) (repositories.Repository, error) {
	switch store {
	case "file":
		return repositories.NewFileRepository(savePath), nil
	case "sqlite":
		return repositories.NewSQLiteRepository(ctx, sqlitePath)
	case "postgres":
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable must be set")
		}
		return repositories.NewPostgresRepository(ctx, connStr)
	default:
		return nil, fmt.Errorf("unknown store: %s", store)
	}
}

// loadOrNewGame restores the saved game, falling back to a fresh
// standard game when the save slot is empty, malformed or does not
// match the expected board dimensions.
func loadOrNewGame(ctx context.Context, repository repositories.Repository, dark, light game.PlayerMode, fresh bool) *game.GameState {
	if fresh {
		return game.NewGameState(dark, light)
	}

	encoded, err := repository.LoadState(ctx)
	if err != nil {
		if !repositories.IsNotFound(err) {
			log.Warn("Failed to load saved game: %v", err)
		}
		return game.NewGameState(dark, light)
	}

	gameState, err := serialize.Decode(encoded)
	if err != nil {
		log.Warn("Discarding saved game: %v", err)
		return game.NewGameState(dark, light)
	}
	if err := checkDimensions(gameState.Board); err != nil {
		log.Warn("Discarding saved game: %v", err)
		return game.NewGameState(dark, light)
	}

	log.Info("Restored saved game")
	return gameState
}

func checkDimensions(board *game.Board) error {
	if board.Height() != boardHeight {
		return fmt.Errorf("expected %d rows, got %d", boardHeight, board.Height())
	}
	for y := 0; y < board.Height(); y++ {
		if board.RowWidth(y) != boardWidth {
			return fmt.Errorf("expected %d columns in row %d, got %d", boardWidth, y, board.RowWidth(y))
		}
	}
	return nil
}

// promptMove reads a move as "x y" from the input stream.
func promptMove(in io.Reader, out io.Writer) agents.ChooseFunc {
	scanner := bufio.NewScanner(in)
	return func(ctx context.Context, s *game.GameState, side game.Disk) (game.Coordinate, error) {
		fmt.Fprintf(out, "%s to move (x y): ", side)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return game.Coordinate{}, fmt.Errorf("failed to read input: %v", err)
			}
			return game.Coordinate{}, io.EOF
		}
		var x, y int
		if _, err := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d %d", &x, &y); err != nil {
			return game.Coordinate{}, fmt.Errorf("expected a move like \"3 2\": %v", err)
		}
		return game.Coordinate{X: x, Y: y}, nil
	}
}
