// Command derive runs the full derivation for stored athletes and writes
// the derived parameters back to each athlete's directory.
//
// Usage:
//
//	derive --athlete-id <id> [--athletes <dir>] [--weeks <n>]
//	derive --all [--athletes <dir>] [--workers <n>]
//
// Exit code 0 on success, 1 on any computation or I/O error with a
// message on stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gravelgod/agf/internal/adapters/repository"
	app "github.com/gravelgod/agf/internal/app"
	"github.com/gravelgod/agf/internal/config"
	"github.com/gravelgod/agf/internal/pipeline"
	"github.com/gravelgod/agf/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	athleteID := flag.String("athlete-id", "", "athlete to derive parameters for")
	athletesDir := flag.String("athletes", "", "override the athletes directory")
	weeks := flag.Int("weeks", 0, "override the plan length in weeks")
	all := flag.Bool("all", false, "re-derive every stored athlete")
	workers := flag.Int("workers", 4, "worker count for --all")
	flag.Parse()

	if *athleteID == "" && !*all {
		fmt.Fprintln(os.Stderr, "derive: --athlete-id or --all is required")
		return 1
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "derive: failed to initialize logging:", err)
		return 1
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "derive: failed to load config:", err)
		return 1
	}
	_ = logger.SetLevelString(cfg.LogLevel)
	if *athletesDir != "" {
		cfg.AthletesDir = *athletesDir
	}
	if *weeks != 0 {
		cfg.DefaultPlanWeeks = *weeks
	}

	store := repository.New(repository.WithRoot(cfg.AthletesDir))
	svc := app.New(cfg, app.WithStore(store))

	if *all {
		return runAll(ctx, store, svc, *workers)
	}

	athlete, err := store.LoadProfile(ctx, *athleteID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "derive:", err)
		return 1
	}
	if *weeks != 0 {
		athlete.PlanWeeks = 0 // force the override to win
	}

	derived, err := svc.Derive(ctx, athlete)
	if err != nil {
		fmt.Fprintln(os.Stderr, "derive:", err)
		return 1
	}

	if err := store.SaveDerived(ctx, derived); err != nil {
		fmt.Fprintln(os.Stderr, "derive:", err)
		return 1
	}

	fmt.Printf("derived %s: tier=%s ability=%s risk=%s plan=%dw\n",
		derived.AthleteID, derived.Tier, derived.RiderAbility, derived.RiskLevel, derived.PlanWeeks)
	for _, w := range derived.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return 0
}

// runAll re-derives every stored athlete through the worker pipeline.
func runAll(ctx context.Context, store *repository.Store, svc *app.Service, workers int) int {
	ids, err := store.List(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "derive:", err)
		return 1
	}
	if len(ids) == 0 {
		fmt.Println("derived 0 athletes")
		return 0
	}

	queue := pipeline.NewInMemoryQueue(pipeline.WithCapacity(len(ids)))
	pool := pipeline.NewPool(workers, queue, svc)
	pool.Submit(ctx, ids)
	done, failed := pool.Run(ctx)

	fmt.Printf("derived %d athletes, %d failed\n", done, failed)
	if failed > 0 {
		return 1
	}
	return 0
}
