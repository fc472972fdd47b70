// internal/config/model.go
//
// Typed configuration model for the commerce URL service.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                            – dotenv values,
//   • `conf/global.yaml`                         – primary static file,
//   • `COMMERCE_`-prefixed environment overrides – highest precedence.
//
// The database password never lives in YAML.  Either it arrives through
// the environment (`COMMERCE_DATABASE__PASSWORD`) or `password_secret`
// names a Vault KV-v2 entry as "mount/path#key" that cmd/web resolves at
// boot.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.  Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gte=0"`
}

//
// Log section
//

// Log controls the zap level for both the file and console cores.
type Log struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

//
// GeoIP section
//

// GeoIP optionally points at a GeoLite2 Country or City database used to
// tag access-log lines with the client country.
type GeoIP struct {
	Path string `koanf:"path" validate:"omitempty,file"`
}

//
// Database section
//

// Database holds the catalog DSN and its secret.
//
// The DSN may contain one `%s` verb where the password goes, so operators
// can tweak host, port, or flags without touching Vault.
type Database struct {
	DSN            string `koanf:"dsn"             validate:"required"`
	Password       string `koanf:"password"`
	PasswordSecret string `koanf:"password_secret" validate:"omitempty,vaultref"`
	MaxOpen        int    `koanf:"max_open"        validate:"gte=0"`
	MaxIdle        int    `koanf:"max_idle"        validate:"gte=0"`
}

//
// Catalog section
//

// Catalog tunes the in-memory product cache.  CacheSize 0 disables it.
type Catalog struct {
	CacheSize int           `koanf:"cache_size" validate:"gte=0"`
	CacheTTL  time.Duration `koanf:"cache_ttl"  validate:"required_with=CacheSize"`
}

//
// URL format section
//

// URLFormat selects the product url strategy and the page it renders on.
type URLFormat struct {
	Product     string `koanf:"product"      validate:"omitempty,urlformat"`
	ProductPage string `koanf:"product_page" validate:"required,startswith=/"`
	Strict      bool   `koanf:"strict"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.  The loader
// discovers `Root` (repo root or COMMERCE_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // COMMERCE_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP      HTTP      `koanf:"http"`
	Log       Log       `koanf:"log"`
	GeoIP     GeoIP     `koanf:"geoip"`
	Database  Database  `koanf:"database"`
	Catalog   Catalog   `koanf:"catalog"`
	URLFormat URLFormat `koanf:"url_format"`
	Paths     Paths     `koanf:"-"` // not loaded from config files
}
