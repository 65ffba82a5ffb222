package config

// Deal holds the mechanism constants shared by every negotiation.
type Deal struct {
	TotalMin      float64 `env:"TOTAL_MIN" envDefault:"50000"`
	TotalMax      float64 `env:"TOTAL_MAX" envDefault:"500000"`
	BridgeZonePct float64 `env:"BRIDGE_ZONE_PCT" envDefault:"0.10"`
	Granularity   int64   `env:"ROUNDING_GRANULARITY" envDefault:"1000"`
}
