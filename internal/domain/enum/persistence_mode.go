package enum

// PersistenceMode selects where backup snapshots are written. It is an
// explicit configuration value injected at startup, not a runtime switch.
type PersistenceMode string

const (
	// PersistenceModeDatabase keeps collections in PostgreSQL only.
	PersistenceModeDatabase PersistenceMode = "database"
	// PersistenceModeFile additionally mirrors every full backup to a
	// directory on disk, matching the console's offline export format.
	PersistenceModeFile PersistenceMode = "file"
)

func (m PersistenceMode) String() string {
	return string(m)
}

// IsValid reports whether m is a recognized persistence mode.
func (m PersistenceMode) IsValid() bool {
	return m == PersistenceModeDatabase || m == PersistenceModeFile
}
