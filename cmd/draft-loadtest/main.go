package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/okian/draftsensei/internal/loadtest"
	"github.com/okian/draftsensei/pkg/logger"
)

// Default configuration constants.
const (
	defaultDrafts      = 10000
	defaultSessions    = 50
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		drafts   = flag.Int("drafts", defaultDrafts, "Number of drafts to generate and submit")
		sessions = flag.Int("sessions", defaultSessions, "Distinct session ids to spread the drafts over (0 sends none)")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		rps      = flag.Float64("rps", 0, "Request rate cap (0 is unlimited)")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed     = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for draft generation")
		output   = flag.String("output", "", "Write the generated drafts to this JSON file")
		logFile  = flag.String("log", "", "Also write JSON logs to this file")
		verbose  = flag.Bool("verbose", false, "Log every failed or rejected draft")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `DraftSensei load test

Submits random drafts to a running service and checks that no answer
suggests an unavailable hero, repeats a hero, exceeds the result size or
breaks score order.

Usage:
  draft-loadtest [options]

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	closeLog := func() error { return nil }
	if *logFile != "" {
		c, err := logger.InitWithFile(*logFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to setup logging:", err)
			os.Exit(1)
		}
		closeLog = c
	} else if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logging:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	_, err := loadtest.Run(ctx, &loadtest.Config{
		BaseURL:    *baseURL,
		Drafts:     *drafts,
		Sessions:   *sessions,
		Workers:    *workers,
		RPS:        *rps,
		Timeout:    *timeout,
		Seed:       *seed,
		OutputFile: *output,
		Verbose:    *verbose,
	})
	cancel()
	_ = closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load test failed:", err)
		os.Exit(1)
	}
}
