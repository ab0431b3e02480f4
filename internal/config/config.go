package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings" // strings splits comma separated lists
    "time"    // time represents token lifetimes
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Token lifetimes are stored as durations; the
// environment accepts either Go duration syntax ("120h") or the day
// shorthand used by the legacy deployment ("5d").
type Config struct {
    Env         string        // application environment (e.g. "dev", "prod")
    Port        string        // HTTP port to listen on
    DBUser      string        // database username
    DBPass      string        // database password (optional)
    DBHost      string        // database host address
    DBPort      string        // database port number
    DBName      string        // database name
    JWTSecret   string        // secret used to sign JWTs
    AccessTTL   time.Duration // access token time-to-live
    RefreshTTL  time.Duration // refresh token time-to-live
    BcryptCost  int           // bcrypt cost for password hashing
    CORSOrigins []string      // origins allowed by the CORS middleware
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:         must("APP_ENV"),                     // environment (dev/test/prod)
        Port:        must("APP_PORT"),                    // port to bind the HTTP server
        DBUser:      must("DB_USER"),                     // database user
        DBPass:      os.Getenv("DB_PASS"),                // database password (empty allowed)
        DBHost:      must("DB_HOST"),                     // database host
        DBPort:      must("DB_PORT"),                     // database port
        DBName:      must("DB_NAME"),                     // database name
        JWTSecret:   must("JWT_SECRET"),                  // secret used for signing JWTs
        AccessTTL:   ttl("JWT_EXPIRES_IN", "5d"),         // access token lifetime
        RefreshTTL:  ttl("JWT_REFRESH_EXPIRES_IN", "7d"), // refresh token lifetime
        BcryptCost:  mustInt("BCRYPT_COST"),              // bcrypt cost factor
        CORSOrigins: origins("CORS_ORIGINS"),             // comma separated allow-list
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// ttl reads a token lifetime from the environment, falling back to def when
// the variable is unset.  A malformed value aborts startup rather than
// silently issuing tokens with a surprise lifetime.
func ttl(key, def string) time.Duration {
    s := os.Getenv(key)
    if s == "" {
        s = def
    }
    d, err := ParseTTL(s)
    if err != nil {
        log.Fatalf("invalid duration for %s: %q", key, s)
    }
    return d
}

// ParseTTL converts a lifetime string into a duration.  "5d" style day
// counts are understood alongside anything time.ParseDuration accepts.
func ParseTTL(s string) (time.Duration, error) {
    if strings.HasSuffix(s, "d") {
        days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
        if err != nil {
            return 0, err
        }
        return time.Duration(days) * 24 * time.Hour, nil
    }
    return time.ParseDuration(s)
}

// origins splits a comma separated origin list.  An empty variable yields a
// nil slice, which the CORS middleware treats as "allow none".
func origins(key string) []string {
    raw := os.Getenv(key)
    if raw == "" {
        return nil
    }
    var out []string
    for _, p := range strings.Split(raw, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
