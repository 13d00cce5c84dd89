// Package loadtest drives a running draft service with random drafts and
// checks every answer against the recommendation contract.
package loadtest

import "time"

// Config holds configuration for a load test run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Drafts     int           // Number of drafts to generate
	Sessions   int           // Distinct session ids spread over the drafts; 0 sends none
	Workers    int           // Number of concurrent workers
	RPS        float64       // Request rate cap; 0 is unlimited
	Timeout    time.Duration // HTTP request timeout
	Seed       uint64        // Seed for draft generation
	OutputFile string        // Where generated drafts are written; empty skips
	Verbose    bool          // Log every violation
}

// Stats holds run statistics.
type Stats struct {
	DraftsGenerated int
	Submitted       int
	Successful      int
	Failed          int
	Violations      int
	Suggestions     int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
