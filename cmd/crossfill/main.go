package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/crossfill/crossfill/bundle"
	"github.com/crossfill/crossfill/config"
	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/lexicon"
	"github.com/crossfill/crossfill/render"
	"github.com/crossfill/crossfill/shell"
	"github.com/crossfill/crossfill/solver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

	if cfg.Shell {
		sc := shell.NewShellController()
		sc.Loop()
		return
	}

	g, lex, err := loadInputs(cfg)
	if err != nil {
		log.Error().Err(err).Msg("loading inputs")
		os.Exit(1)
	}

	s := solver.New(g, lex)
	asg, err := s.Solve()
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Println("No solution.")
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg("solving")
		os.Exit(1)
	}

	if err := render.Text(os.Stdout, g, asg); err != nil {
		log.Error().Err(err).Msg("rendering")
		os.Exit(1)
	}
	if cfg.OutputPath != "" {
		if err := render.SavePNG(cfg.OutputPath, g, asg); err != nil {
			log.Error().Err(err).Msg("saving image")
			os.Exit(1)
		}
		log.Info().Str("path", cfg.OutputPath).Msg("saved image")
	}
}

// loadInputs reads the puzzle from a bundle, or from a structure file plus
// a word source. The two files load concurrently; each one's fingerprint is
// logged so a run can be matched to its exact inputs.
func loadInputs(cfg *config.Config) (*grid.Grid, *lexicon.Lexicon, error) {
	if cfg.BundlePath != "" {
		return bundle.ParseFile(cfg.BundlePath)
	}
	if cfg.StructurePath == "" || (cfg.WordsPath == "" && cfg.WordsDBPath == "") {
		return nil, nil, errors.New(
			"usage: crossfill --structure <file> --words <file> [--output <png>], " +
				"or --bundle <file>, or --shell")
	}

	var (
		g   *grid.Grid
		lex *lexicon.Lexicon
		eg  errgroup.Group
	)
	eg.Go(func() error {
		raw, err := os.ReadFile(cfg.StructurePath)
		if err != nil {
			return err
		}
		log.Debug().Uint64("fingerprint", xxhash.Sum64(raw)).
			Str("path", cfg.StructurePath).Msg("structure")
		g, err = grid.Parse(bytes.NewReader(raw))
		return err
	})
	eg.Go(func() error {
		var err error
		if cfg.WordsDBPath != "" {
			lex, err = lexicon.LoadDB(cfg.WordsDBPath)
			return err
		}
		raw, err := os.ReadFile(cfg.WordsPath)
		if err != nil {
			return err
		}
		log.Debug().Uint64("fingerprint", xxhash.Sum64(raw)).
			Str("path", cfg.WordsPath).Msg("word list")
		lex, err = lexicon.Load(bytes.NewReader(raw))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return g, lex, nil
}
