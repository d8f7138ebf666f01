package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/tracing"
	"cpu-scheduler/internal/workload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cpu-scheduler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file (default ./config.yaml)")
	workloadPath := flag.String("workload", "", "schedule a YAML workload file and print the report instead of serving")
	algorithmID := flag.String("algorithm", "", "algorithm for -workload: FCFS, SRTF, RR, NPP or ALL (overrides the file)")
	quantum := flag.Int("quantum", 0, "Round Robin time quantum for -workload (overrides the file)")
	flag.Parse()

	var quantumOverride requests.Int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "quantum" {
			quantumOverride = requests.NewInt(*quantum)
		}
	})

	var (
		cfg *config.SchedulerConfig
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.GetSchedulerConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(log)

	if cfg.TracingEnabled {
		if err := tracing.Init("cpu-scheduler", api.Version, cfg.TraceOutput); err != nil {
			return fmt.Errorf("failed to initialise tracing: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx); err != nil {
				log.Error("failed to flush traces", "error", err)
			}
		}()
	}

	if *workloadPath != "" {
		return runWorkload(os.Stdout, log, cfg, *workloadPath, *algorithmID, quantumOverride)
	}
	return api.NewServer(cfg, log).Run()
}

// runWorkload schedules a workload file offline and writes a report per algorithm to w.
// A set quantum overrides the file and the config, and is validated like any other.
func runWorkload(w io.Writer, log *slog.Logger, cfg *config.SchedulerConfig, path, algorithmID string, quantum requests.Int) error {
	request, err := workload.Load(path)
	if err != nil {
		return err
	}
	if algorithmID != "" {
		request.Algorithm = algorithmID
	}

	algorithms, err := selectAlgorithms(request.Algorithm)
	if err != nil {
		return err
	}
	processes, err := request.ToProcesses()
	if err != nil {
		return err
	}
	limits := schedulers.Limits{MaxProcesses: cfg.MaxProcesses, MaxTotalBurst: cfg.MaxTotalBurst}
	if err := schedulers.CheckLimits(processes, limits); err != nil {
		return err
	}

	timeQuantum := quantum.Or(request.TimeQuantum.Or(cfg.RoundRobinTimeQuantum))

	runID := uuid.NewString()
	log.Info("scheduling workload", "run", runID, "file", path, "processes", len(processes))

	for _, algorithm := range algorithms {
		_, span := tracing.StartSpan(context.Background(), "schedule "+algorithm.String())
		span.SetString("run", runID).SetInt("processes", len(processes))

		result, err := schedulers.Schedule(algorithm, timeQuantum, processes)
		span.SetStatus(err)
		span.End()
		if err != nil {
			return err
		}

		title := algorithm.Label()
		if algorithm.NeedsQuantum() {
			title = fmt.Sprintf("%s (quantum %d)", title, timeQuantum)
		}
		report.Render(w, title, result)
	}
	return nil
}

func selectAlgorithms(id string) ([]schedulers.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(id), "ALL") {
		return schedulers.Algorithms, nil
	}
	algorithm, err := schedulers.ParseAlgorithm(id)
	if err != nil {
		return nil, err
	}
	return []schedulers.Algorithm{algorithm}, nil
}
