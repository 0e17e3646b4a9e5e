// path: cmd/oopchess/main.go
// Console entry point: resolves configuration, builds the logger, lets
// the player pick a variant and runs one session to its terminal verdict.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/VolkovaDiana666/OOP-chess/internal/bootstrap"
	"github.com/VolkovaDiana666/OOP-chess/internal/cli"
	"github.com/VolkovaDiana666/OOP-chess/internal/game"
)

func main() {
	// Flags (env fallbacks).
	cfgPath := flag.String("config", getenv("OOPCHESS_CONFIG", ""), "optional env-format config file")
	variantFlag := flag.String("variant", getenv("OOPCHESS_VARIANT", ""), "game variant: chess, checkers or extended")
	flag.Parse()

	cfg, err := bootstrap.Setup(*cfgPath)
	fatalIf(err, "config")

	logger, err := newLogger(cfg)
	fatalIf(err, "logger")
	defer logger.Sync()
	sugar := logger.Sugar()

	console := cli.NewConsole(os.Stdin, os.Stdout)

	name := *variantFlag
	if name == "" {
		name = cfg.GameVariant
	}
	if name == "" {
		name, err = console.ChooseVariant()
		fatalIf(err, "variant prompt")
	}
	variant, ok := game.ParseVariant(name)
	if !ok {
		log.Fatalf("unknown game variant %q; valid: chess, checkers, extended", name)
	}

	session := game.NewSession(variant, console, console, console, sugar)
	result, err := session.Run()
	if err != nil {
		sugar.Errorw("session aborted", zap.Error(err))
		os.Exit(1)
	}
	sugar.Infow("session complete", "loser", result.Loser.String(), "moves", result.Moves)
}

// newLogger builds a production zap logger at the configured level,
// writing to the configured file so the log stream does not interleave
// with the rendered board when one is set.
func newLogger(cfg *bootstrap.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogFile != "" {
		zcfg.OutputPaths = []string{cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return zcfg.Build()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
