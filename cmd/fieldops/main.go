package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"customfields-server/cmd/api/wire"
	"customfields-server/internal/customfields/domain"
	shareddomain "customfields-server/internal/shared_kernel/domain"

	"github.com/spf13/pflag"
)

const usage = `usage: fieldops <command> [flags]

commands:
  dedup   remove duplicate field values of a model or a single record
  stats   print partitioning statistics and recommendations
`

var errUsage = errors.New("invalid usage")

func main() {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		slog.Error("fieldops failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "dedup":
		return runDedup(ctx, args[1:])
	case "stats":
		return runStats(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runDedup(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("dedup", pflag.ContinueOnError)
	namespace := flags.StringP("namespace", "n", "", "namespace to clean up")
	model := flags.StringP("model", "m", "", "model whose values are deduplicated")
	record := flags.StringP("record", "r", "", "restrict the cleanup to one record")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	ns, err := shareddomain.NewNamespace(*namespace)
	if err != nil {
		return err
	}

	service, err := wire.InitializeDeduplicationService()
	if err != nil {
		return err
	}

	var removed int64
	if *record != "" {
		removed, err = service.CleanupDuplicates(ctx, ns, *model, *record)
	} else {
		removed, err = service.CleanupModelDuplicates(ctx, ns, *model)
	}
	if err != nil {
		return err
	}

	slog.Info("duplicates removed",
		slog.String("namespace", ns.String()),
		slog.String("model", *model),
		slog.Int64("removed", removed),
	)
	return nil
}

func runStats(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("stats", pflag.ContinueOnError)
	namespace := flags.StringP("namespace", "n", "", "namespace to inspect")
	model := flags.StringP("model", "m", "", "inspect a single model")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	ns, err := shareddomain.NewNamespace(*namespace)
	if err != nil {
		return err
	}

	advisor, err := wire.InitializePartitioningAdvisor()
	if err != nil {
		return err
	}

	var stats []domain.ModelStats
	if *model != "" {
		single, err := advisor.ModelStats(ctx, ns, *model)
		if err != nil {
			return err
		}
		stats = append(stats, single)
	} else {
		stats, err = advisor.AllModelsStats(ctx, ns)
		if err != nil {
			return err
		}
	}

	for _, s := range stats {
		printStats(os.Stdout, s)
	}
	return nil
}

// printStats lists every page holding values or field definitions.
func printStats(w io.Writer, s domain.ModelStats) {
	fmt.Fprintf(w, "%s: %d values, %d fields\n", s.ModelName, s.TotalValues, s.TotalFields)
	for _, page := range domain.SortedPages(s.ValuesByPage, s.FieldsByPage) {
		fmt.Fprintf(w, "  %-24s %10d values %6d fields\n", page, s.ValuesByPage[page], s.FieldsByPage[page])
	}
	for _, r := range s.Recommendations {
		fmt.Fprintf(w, "  [%s] %s\n", r.Kind, r.Message)
	}
}
