package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/feichai0017/inquiry-reader/config"
	"github.com/feichai0017/inquiry-reader/internal/document"
	"github.com/feichai0017/inquiry-reader/internal/resolve"
	"github.com/feichai0017/inquiry-reader/internal/run"
	"github.com/feichai0017/inquiry-reader/internal/walker"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
	"github.com/feichai0017/inquiry-reader/pkg/storage"
)

func main() {
	log, err := logger.NewLogger(
		logger.WithLevel("info"),
		logger.WithEncoding("console"),
		logger.WithOutputPaths([]string{"stderr"}),
	)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cmd := &cli.Command{
		Name:  "inquiry-reader",
		Usage: "Scan vendor payment inquiries in object storage, match invoices, and draft replies",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "bucket",
				Usage:   "Bucket/container name (overrides STORAGE_BUCKET)",
				Sources: cli.EnvVars("STORAGE_BUCKET"),
			},
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Folder/prefix to scan (overrides STORAGE_PREFIX)",
				Sources: cli.EnvVars("STORAGE_PREFIX"),
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum folder depth to scan",
				Value: config.DefaultMaxDepth,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Usage: "List PDF/HTML files reachable under the configured prefix",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Show the raw per-level listing trace (storage permission troubleshooting)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return scanAction(ctx, cmd, log)
				},
			},
			{
				Name:  "process",
				Usage: "Process files: classify, extract invoice ids, resolve, and draft replies",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "files",
						Usage: "Specific file paths to process (default: every discovered file)",
					},
					&cli.StringFlag{
						Name:  "log-file",
						Usage: "Write the run log as CSV to this path",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return processAction(ctx, cmd, log)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error("Run failed", logger.Error(err))
		os.Exit(1)
	}
}

// setup loads configuration and builds the storage backend. A
// NotConfiguredError halts here, before any listing or download.
func setup(cmd *cli.Command, log logger.Logger) (*config.Config, storage.Storage, error) {
	cfg, err := config.Load()
	if err != nil {
		var ncErr *config.NotConfiguredError
		if errors.As(err, &ncErr) {
			log.Error("Storage/database not configured",
				logger.Strings("missing", ncErr.Missing),
			)
		}
		return nil, nil, err
	}

	if b := cmd.String("bucket"); b != "" {
		cfg.Bucket = b
	}
	if p := cmd.String("prefix"); p != "" {
		cfg.Prefix = p
	}

	store, err := storage.NewStorage(storage.StorageType(cfg.StorageType), cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage backend: %w", err)
	}

	return cfg, store, nil
}

func scanAction(ctx context.Context, cmd *cli.Command, log logger.Logger) error {
	cfg, store, err := setup(cmd, log)
	if err != nil {
		return err
	}

	w := walker.New(store, log)
	files, trace := w.ListFiles(ctx, cfg.Prefix, int(cmd.Int("max-depth")))

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "(root)"
	}
	fmt.Printf("Found %d files in bucket %q with prefix %q.\n", len(files), cfg.Bucket, prefix)
	for _, f := range files {
		fmt.Println(f)
	}

	if cmd.Bool("debug") {
		fmt.Println("\nDebug: raw listing samples")
		for _, t := range trace.Walk {
			if t.Err != "" {
				fmt.Printf("  %-40s depth=%d error=%s\n", t.Prefix+"/", t.Depth, t.Err)
				continue
			}
			fmt.Printf("  %-40s depth=%d sample=%v\n", t.Prefix+"/", t.Depth, t.Sample)
		}
	}

	if len(files) == 0 {
		log.Info("No PDF/HTML files found. Check bucket/prefix or storage policies: " +
			"verify the exact bucket name, try a blank prefix, make sure read access is " +
			"allowed, and ensure files end in .pdf/.html/.htm")
	}

	return nil
}

func processAction(ctx context.Context, cmd *cli.Command, log logger.Logger) error {
	cfg, store, err := setup(cmd, log)
	if err != nil {
		return err
	}

	recordStore, err := resolve.NewPostgresStore(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to invoice database: %w", err)
	}
	defer recordStore.Close()

	selected := cmd.StringSlice("files")
	if len(selected) == 0 {
		w := walker.New(store, log)
		selected, _ = w.ListFiles(ctx, cfg.Prefix, int(cmd.Int("max-depth")))
	}
	if len(selected) == 0 {
		log.Info("Nothing to process")
		return nil
	}

	orch := run.NewOrchestrator(
		store,
		document.NewMaterializer(log),
		resolve.NewResolver(recordStore, log),
		log,
	)

	results, entries := orch.ProcessFiles(ctx, selected)

	for _, res := range results {
		fmt.Printf("\n=== %s\n", res.Path)
		if res.Skipped {
			fmt.Printf("skipped: %s\n", res.SkipReason)
			continue
		}
		for _, d := range res.Drafts {
			fmt.Printf("\nSubject: %s\n\n%s\n", d.Subject, d.Body)
		}
	}

	fmt.Printf("\nRun log (%d entries)\n", len(entries))
	if err := run.WriteCSV(os.Stdout, entries); err != nil {
		return err
	}

	if path := cmd.String("log-file"); path != "" {
		if err := run.WriteCSVFile(path, entries); err != nil {
			return err
		}
		log.Info("Run log written", logger.String("path", path))
	}

	return nil
}
