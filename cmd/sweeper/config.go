package main

import (
	"os"
	"time"
)

const (
	sweepIntervalEnvVar   = "CIRCULATION_SWEEP_INTERVAL"
	defaultSweepInterval  = time.Minute
	shutdownDrainDeadline = 10 * time.Second
)

// sweepIntervalFromEnv reads the sweep interval from the environment,
// falling back to the default on absence or parse failure.
func sweepIntervalFromEnv() time.Duration {
	raw := os.Getenv(sweepIntervalEnvVar)
	if raw == "" {
		return defaultSweepInterval
	}

	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		return defaultSweepInterval
	}

	return interval
}
