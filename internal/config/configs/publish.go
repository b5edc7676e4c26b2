package configs

import "time"

// Publish configures the in-process scheduled publication sweep.
type Publish struct {
	// Enabled starts the periodic sweep inside the HTTP server process.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Interval between two sweeps.
	Interval time.Duration `env:"INTERVAL" envDefault:"1m"`
	// Timeout bounds a single sweep, storage calls included.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// LockTTL is how long a replica holds the sweep lock. It must exceed
	// Timeout.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"45s"`
}
