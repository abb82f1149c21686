package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/rgonek/mdhtml/internal/config"
	"github.com/rgonek/mdhtml/internal/logging"
	"github.com/rgonek/mdhtml/site"
)

type flagOverrides struct {
	engine   string
	workers  int
	logLevel string
	basePath string
}

// resolveConfig loads the config file and applies flags that were set on
// the command line.
func resolveConfig(path string, set map[string]bool, f flagOverrides) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if set["engine"] {
		cfg.Engine = f.engine
	}
	if set["workers"] {
		cfg.Workers = f.workers
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if set["base-path"] {
		cfg.BasePath = f.basePath
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func renderFile(ctx context.Context, engine site.Engine, path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- rendering a user-provided file
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}
	return engine.Render(ctx, string(data), path)
}

func build(ctx context.Context, cfg config.Config, engine site.Engine) error {
	if err := site.CopyStatic(cfg.Static, cfg.Public); err != nil {
		return err
	}
	gen := site.NewGenerator(engine, cfg.Workers, cfg.BasePath)
	return gen.GenerateTree(ctx, cfg.Content, cfg.Template, cfg.Public)
}

func main() {
	logging.SetDefaultLogger()

	configPath := flag.String("config", "mdsite.yaml", "Path to YAML config file")
	engineName := flag.String("engine", site.EngineNative, "Rendering engine: native|goldmark")
	workers := flag.Int("workers", 0, "Concurrent page workers (0 = GOMAXPROCS)")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	basePath := flag.String("base-path", "", "URL prefix for root-relative links, e.g. /blog")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdsite [options] [input-file]\n")
		fmt.Fprintf(os.Stderr, "Without input-file the whole site is built.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := resolveConfig(*configPath, set, flagOverrides{
		engine:   *engineName,
		workers:  *workers,
		logLevel: *logLevel,
		basePath: *basePath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log config: %v\n", err)
		os.Exit(1)
	}

	engine, err := site.NewEngine(cfg.Engine, cfg.Markdown(), cfg.BasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid engine: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if args := flag.Args(); len(args) > 0 {
		html, err := renderFile(ctx, engine, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting file: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(html)
		return
	}

	if err := build(ctx, cfg, engine); err != nil {
		log.Error().Err(err).Msg("Build failed")
		os.Exit(1)
	}
}
