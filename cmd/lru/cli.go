package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pyropy/lrucache/core/model"
	"github.com/pyropy/lrucache/core/replay"
	"github.com/pyropy/lrucache/core/session"
	"github.com/urfave/cli/v2"
)

var demoCmd = &cli.Command{
	Name:  "demo",
	Usage: "Replay the two slot walkthrough",
	Action: func(ctx *cli.Context) error {
		return replayAndPrint(ctx.App.Writer, replay.DemoCapacity, replay.DemoOps())
	},
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "Replay ops given on the command line",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:     "op",
			Required: true,
			Usage:    "Op to apply, get:<key> or put:<key>:<value>, repeatable",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "Record the session in the store",
		},
	},
	Action: func(ctx *cli.Context) error {
		capacity := ctx.Int("capacity")

		ops, err := model.ParseOps(ctx.StringSlice("op"))
		if err != nil {
			return err
		}

		err = replayAndPrint(ctx.App.Writer, capacity, ops)
		if err != nil {
			return err
		}

		if !ctx.Bool("save") {
			return nil
		}

		store, err := session.NewStore(ctx.String("store"))
		if err != nil {
			return err
		}
		defer store.Close()

		s := model.NewSession(capacity, ops)
		err = store.Put(context.Background(), &s)
		if err != nil {
			return err
		}

		log.Infow("run", "status", "session saved", "id", s.ID, "ops", len(ops))
		fmt.Fprintln(ctx.App.Writer, "session", s.ID)
		return nil
	},
}

var replayCmd = &cli.Command{
	Name:  "replay",
	Usage: "Replay a recorded session",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "id",
			Required: true,
			Usage:    "Session ID printed by run --save",
		},
	},
	Action: func(ctx *cli.Context) error {
		id, err := uuid.Parse(ctx.String("id"))
		if err != nil {
			return err
		}

		store, err := session.NewStore(ctx.String("store"))
		if err != nil {
			return err
		}
		defer store.Close()

		s, err := store.Get(context.Background(), id)
		if err != nil {
			return err
		}

		return replayAndPrint(ctx.App.Writer, s.Capacity, s.Ops)
	},
}

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "List recorded sessions",
	Action: func(ctx *cli.Context) error {
		store, err := session.NewStore(ctx.String("store"))
		if err != nil {
			return err
		}
		defer store.Close()

		sessions, err := store.All(context.Background())
		if err != nil {
			return err
		}

		for _, s := range sessions {
			fmt.Fprintf(ctx.App.Writer, "%s\tcapacity=%d\tops=%d\t%s\n", s.ID, s.Capacity, len(s.Ops), s.CreatedAt.Format(time.RFC3339))
		}

		return nil
	},
}

func replayAndPrint(w io.Writer, capacity int, ops []model.Op) error {
	report, err := replay.NewReplayer(log).Replay(capacity, ops)
	if err != nil {
		return err
	}

	for _, step := range report.Steps {
		line := fmt.Sprintf("%-12s", step.Op)

		switch {
		case step.Op.Kind == model.OpGet && step.Hit:
			line += fmt.Sprintf(" -> %d", step.Value)
		case step.Op.Kind == model.OpGet:
			line += " -> not found"
		case step.Hit:
			line += " updated"
		default:
			line += " inserted"
		}

		if step.Evicted {
			line += fmt.Sprintf(", evicted %d=%d", step.EvictedKey, step.EvictedValue)
		}

		fmt.Fprintf(w, "%s\tkeys=%v\n", line, step.Keys)
	}

	fmt.Fprintf(w, "hits=%d misses=%d inserts=%d updates=%d evictions=%d keys=%v\n", report.Hits, report.Misses, report.Inserts, report.Updates, report.Evictions, report.Keys)
	return nil
}
