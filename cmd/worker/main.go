package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/poliscope/stancetrack/internal/setup"
	"github.com/poliscope/stancetrack/internal/worker/metrics"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "worker",
		Usage: "Start the stancetrack metrics worker",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   1,
				Usage:   "Number of workers to start",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			runWorkers(ctx, c.Int("workers"))
			return nil
		},
	}

	return app.Run(context.Background(), os.Args)
}

// runWorkers starts multiple worker instances sharing one app.
func runWorkers(ctx context.Context, count int64) {
	app, err := setup.InitializeApp(ctx, true)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup(ctx)

	var wg sync.WaitGroup

	for i := range count {
		wg.Add(1)

		go func(workerID int64) {
			defer wg.Done()

			logger := app.Logger.Named(fmt.Sprintf("worker_%d", workerID))
			w := metrics.New(app, logger)
			runWorker(ctx, w, logger)
		}(i)
	}

	log.Printf("Started %d metrics workers", count)
	wg.Wait()
	log.Println("All workers have finished. Exiting.")
}

// runWorker runs a single worker in a loop with panic recovery.
func runWorker(ctx context.Context, w *metrics.Worker, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("Context cancelled, stopping worker")
			return
		default:
			func() {
				defer func() {
					if r := recover(); r != nil {
						logger.Error("Worker execution failed", zap.Any("panic", r))
						logger.Info("Restarting worker in 5 seconds...")
						time.Sleep(5 * time.Second)
					}
				}()

				logger.Info("Starting worker")
				w.Start(ctx)
			}()
		}
	}
}
