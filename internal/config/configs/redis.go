package configs

// Redis configures the Redis client used to serialise publication sweeps
// across replicas. When Enabled is false every replica sweeps on its own
// schedule, which is still correct because the sweep is idempotent.
type Redis struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	URL     string `env:"URL" envDefault:"redis://localhost:6379/0"`
	// KeyPrefix namespaces every key written by this service.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"newsdesk"`
}

// Key joins the configured prefix and name.
func (c Redis) Key(name string) string {
	if c.KeyPrefix == "" {
		return name
	}
	return c.KeyPrefix + ":" + name
}
