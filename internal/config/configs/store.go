package configs

import "strings"

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Store selects the campaign store backend. The memory backend mirrors
// the console's simulated API and needs no database; postgres is the real
// deployment. Seed loads the demo campaign set on startup.
type Store struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
	Seed    bool   `env:"SEED" envDefault:"false"`
}

// Normalized returns the backend name in lower case, defaulting unknown
// values to memory.
func (s Store) Normalized() string {
	switch strings.ToLower(s.Backend) {
	case BackendPostgres:
		return BackendPostgres
	default:
		return BackendMemory
	}
}
