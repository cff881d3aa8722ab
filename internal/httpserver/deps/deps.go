package deps

import (
	"time"

	"github.com/dastodo/market/internal/logger"
	"github.com/dastodo/market/internal/storage"
	"github.com/dastodo/market/internal/store"
)

type Deps struct {
	Logger            logger.Logger
	StartTime         time.Time
	Version           string
	Commit            string
	BuildDate         string
	GoVersion         string
	TimeNow           func() time.Time // for testing, defaults to time.Now
	AllowedHosts      []string         // Host headers allowed on operational endpoints
	AllowedCIDRS      []string         // IPs allowed to access operational endpoints
	TrustProxy        bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Store             *store.Store     // the listing store every handler goes through
	Medium            storage.Medium   // raw medium, for health reporting only
	StorageBackend    string           // "redis" | "memory"
	SeedFile          string           // path to the seed catalog (empty = seeding disabled)
	SeedReloadTrigger chan struct{}    // channel to trigger a manual seed reload (nil if seeding disabled)
	RateLimitBurst    int
	RateLimitPerMin   int
}
