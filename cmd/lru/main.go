package main

import (
	"os"

	"github.com/pyropy/lrucache/core/config"
	"github.com/pyropy/lrucache/lib/logger"
	"github.com/urfave/cli/v2"
)

var log, _ = logger.New("lru")

func main() {
	if err := run(os.Args); err != nil {
		log.Fatalw("startup", "ERROR", err)
	}
}

func run(args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		log.Infow("startup", "error", "config load failed")
		return err
	}

	return newApp(cfg).Run(args)
}

func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "lru",
		Usage: "Run workloads against a fixed capacity LRU cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "store",
				Value:   cfg.Store.Path,
				EnvVars: []string{"LRU_STORE_PATH"},
				Usage:   "Directory holding recorded sessions",
			},
			&cli.IntFlag{
				Name:    "capacity",
				Value:   cfg.Cache.Capacity,
				EnvVars: []string{"LRU_CAPACITY"},
				Usage:   "Cache capacity used by run",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   cfg.Log.Level,
				EnvVars: []string{"LRU_LOG_LEVEL"},
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx *cli.Context) error {
			l, err := logger.NewAtLevel("lru", ctx.String("log-level"))
			if err != nil {
				return err
			}

			log = l
			return nil
		},
		Commands: []*cli.Command{
			demoCmd,
			runCmd,
			replayCmd,
			listCmd,
		},
	}
}
