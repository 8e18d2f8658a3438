package config

import (
	"flag"
	"os"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        HTTP bind address (e.g., ":8080")
//	-d string        PostgreSQL DSN
//	-redis string    Redis address
//	-s string        JWT HMAC secret key
//	-ttl int         session lifetime, hours
//	-sweep int       certificate sweep interval, minutes
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers and then converted to
//     time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-redis", "-s", "-ttl", "-sweep"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "redis", config.RedisAddr, "redis address")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTTL := fs.Int("ttl", int(config.SessionTTL.Hours()), "session ttl (in hours)")
	sweepInterval := fs.Int("sweep", int(config.CertSweepInterval.Minutes()), "certificate sweep interval (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Hour
	config.CertSweepInterval = time.Duration(*sweepInterval) * time.Minute
}
