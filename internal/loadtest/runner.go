package loadtest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/draftsensei/internal/domain/types"
	"github.com/okian/draftsensei/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

const percentageMultiplier = 100

// Run executes a complete load test against config.BaseURL. It returns the
// run statistics and, when any draft failed or broke the contract, an error.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting draft load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("drafts", config.Drafts),
		logger.Int("sessions", config.Sessions),
		logger.Int("workers", config.Workers),
		logger.Float64("rps", config.RPS),
		logger.String("timeout", config.Timeout.String()))

	client := newHTTPClient(config.BaseURL, config.Timeout)

	// Step 1: Check service health
	if err := client.getJSON(ctx, "/healthz", nil); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Learn the hero pool and result size
	heroes, err := fetchHeroes(ctx, client)
	if err != nil {
		return stats, fmt.Errorf("hero listing failed: %w", err)
	}
	if len(heroes) == 0 {
		return stats, errors.New("service has no heroes")
	}
	resultSize, err := fetchResultSize(ctx, client)
	if err != nil {
		return stats, fmt.Errorf("stats lookup failed: %w", err)
	}

	// Step 3: Generate and submit drafts
	drafts := generateDrafts(ctx, config, heroes, stats)
	submitDrafts(ctx, config, client, drafts, resultSize, stats)

	// Step 4: Save drafts to file
	if config.OutputFile != "" {
		if err := saveDrafts(config.OutputFile, drafts); err != nil {
			log.Warn(ctx, "failed to save drafts to file", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Failed > 0 || stats.Violations > 0 {
		return stats, fmt.Errorf("%d drafts failed, %d broke the contract", stats.Failed, stats.Violations)
	}
	log.Info(ctx, "load test completed successfully")
	return stats, nil
}

// submitDrafts posts every draft through a worker pool and verifies each answer.
func submitDrafts(ctx context.Context, config *Config, client *HTTPClient, drafts []types.DraftRequest, resultSize int, stats *Stats) {
	log := logger.Get()
	workers := max(config.Workers, 1)

	var limiter *rate.Limiter
	if config.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RPS), workers)
	}

	var submitted, successful, failed, violations, suggestions atomic.Int64

	draftChan := make(chan types.DraftRequest, workers*2)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range draftChan {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						failed.Add(1)
						continue
					}
				}
				path := "/draft/suggest"
				if d.Lane != "" {
					path = "/draft/pick"
				}
				var resp types.SuggestResponse
				err := client.postJSON(ctx, path, d, &resp)
				submitted.Add(1)
				switch {
				case err != nil:
					failed.Add(1)
					if config.Verbose {
						log.Warn(ctx, "draft request failed", logger.Error(err))
					}
				default:
					suggestions.Add(int64(len(resp.Suggestions)))
					if verr := verifySuggestion(d, resp, resultSize); verr != nil {
						violations.Add(1)
						if config.Verbose {
							log.Warn(ctx, "draft answer rejected", logger.Error(verr))
						}
						continue
					}
					successful.Add(1)
				}
			}
		}()
	}

	go func() {
		defer close(draftChan)
		for _, d := range drafts {
			select {
			case <-ctx.Done():
				return
			case draftChan <- d:
			}
		}
	}()

	wg.Wait()

	stats.Submitted = int(submitted.Load())
	stats.Successful = int(successful.Load())
	stats.Failed = int(failed.Load())
	stats.Violations = int(violations.Load())
	stats.Suggestions = int(suggestions.Load())
}

// saveDrafts writes the generated drafts as a JSON array.
func saveDrafts(filename string, drafts []types.DraftRequest) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	b, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drafts: %w", err)
	}
	if err := os.WriteFile(filename, b, filePermission); err != nil {
		return fmt.Errorf("failed to write drafts: %w", err)
	}
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var successRate, draftsPerSecond float64
	if stats.Submitted > 0 {
		successRate = float64(stats.Successful) / float64(stats.Submitted) * percentageMultiplier
	}
	if stats.Duration > 0 {
		draftsPerSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("draftsGenerated", stats.DraftsGenerated),
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("failed", stats.Failed),
		logger.Int("violations", stats.Violations),
		logger.Int("suggestions", stats.Suggestions),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("draftsPerSecond", draftsPerSecond))
}
