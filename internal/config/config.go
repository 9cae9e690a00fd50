// Package config reads server settings from the environment (optionally
// seeded from a .env file) and design defaults from a TOML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"Bendung/internal/calc/drop"
	"Bendung/internal/calc/dropcheck"
	"Bendung/internal/calc/floor"
)

// Design holds the values used when a request leaves a field out.
type Design struct {
	Gravity            float64 `toml:"gravity"`
	ConcreteUnitWeight float64 `toml:"concrete_unit_weight"`
	WaterUnitWeight    float64 `toml:"water_unit_weight"`
	AllowableBearing   float64 `toml:"allowable_bearing"`
	FloorThickness     float64 `toml:"floor_thickness"`
}

func DefaultDesign() Design {
	return Design{
		Gravity:            9.81,
		ConcreteUnitWeight: 24.0,
		WaterUnitWeight:    9.81,
		AllowableBearing:   150.0,
		FloorThickness:     0.5,
	}
}

// LoadDesign overlays the TOML file at path on the built-in defaults.
// An empty path returns the defaults.
func LoadDesign(path string) (Design, error) {
	d := DefaultDesign()
	if path == "" {
		return d, nil
	}
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return Design{}, fmt.Errorf("config: reading design defaults %s: %w", path, err)
	}
	return d, nil
}

// Floor returns the floor check defaults.
func (d Design) Floor() floor.Input {
	in := floor.DefaultInput()
	in.FloorThickness = d.FloorThickness
	in.AllowableBearing = d.AllowableBearing
	in.ConcreteUnitWeight = d.ConcreteUnitWeight
	in.WaterUnitWeight = d.WaterUnitWeight
	return in
}

// DropCheck returns the defaults for a combined design and floor check.
func (d Design) DropCheck() dropcheck.Input {
	return dropcheck.Input{
		Drop:               drop.Input{Gravity: d.Gravity},
		FloorThickness:     d.FloorThickness,
		AllowableBearing:   d.AllowableBearing,
		ConcreteUnitWeight: d.ConcreteUnitWeight,
		WaterUnitWeight:    d.WaterUnitWeight,
	}
}

type Server struct {
	Addr      string
	TLSCert   string
	TLSKey    string
	TokenKey  []byte
	TicketTTL time.Duration
	RateLimit float64
	RateBurst int
	Debug     bool
	Design    Design
}

// LoadDotEnv copies a .env file in the working directory into the
// environment without overriding variables that are already set.
func LoadDotEnv() error {
	return godotenv.Load()
}

// FromEnv reads the server settings from the environment.
func FromEnv() (Server, error) {
	var err error
	cfg := Server{
		Addr:      getenv("ADDR", ":8080"),
		TLSCert:   os.Getenv("TLS_CERT"),
		TLSKey:    os.Getenv("TLS_KEY"),
		TokenKey:  []byte(os.Getenv("TOKEN_KEY")),
		TicketTTL: 24 * time.Hour,
		RateLimit: 5,
		RateBurst: 10,
	}
	if len(cfg.TokenKey) == 0 {
		return Server{}, fmt.Errorf("config: TOKEN_KEY environment variable is not set")
	}
	if v := os.Getenv("TICKET_TTL"); v != "" {
		if cfg.TicketTTL, err = time.ParseDuration(v); err != nil {
			return Server{}, fmt.Errorf("config: TICKET_TTL: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if cfg.RateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			return Server{}, fmt.Errorf("config: RATE_LIMIT: %w", err)
		}
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		if cfg.RateBurst, err = strconv.Atoi(v); err != nil {
			return Server{}, fmt.Errorf("config: RATE_BURST: %w", err)
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return Server{}, fmt.Errorf("config: DEBUG: %w", err)
		}
	}
	if cfg.Design, err = LoadDesign(os.Getenv("DESIGN_DEFAULTS")); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// TLS reports whether both certificate and key are configured.
func (s Server) TLS() bool {
	return s.TLSCert != "" && s.TLSKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
