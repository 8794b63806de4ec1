package configs

import "fmt"

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"

	MeterPostgres = "postgres"
	MeterRedis    = "redis"
)

// Store selects the campaign storage and the meter that charges displays.
type Store struct {
	// Backend keeps campaigns and file records: postgres or memory.
	Backend string `env:"BACKEND" envDefault:"postgres"`
	// Meter charges displays: postgres uses a conditional UPDATE on the
	// campaign row, redis a Lua conditional increment. The redis meter
	// still lists campaigns from Backend.
	Meter string `env:"METER" envDefault:"postgres"`
}

// Validate rejects unknown backends and meters.
func (s Store) Validate() error {
	switch s.Backend {
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", s.Backend)
	}
	switch s.Meter {
	case MeterPostgres, MeterRedis:
	default:
		return fmt.Errorf("unknown store meter %q", s.Meter)
	}
	return nil
}
