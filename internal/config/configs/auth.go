package configs

// Auth holds shared secrets. Tokens are issued elsewhere; this service only
// verifies them.
type Auth struct {
	// JWTSecret is the HMAC key for admin bearer tokens.
	JWTSecret string `env:"JWT_SECRET"`
	// JWTIssuer, when set, must match the iss claim.
	JWTIssuer string `env:"JWT_ISSUER"`
	// CronSecret guards the publication trigger endpoint.
	CronSecret string `env:"CRON_SECRET"`
}
