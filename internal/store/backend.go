package store

// Backend reads and overwrites the persisted question rows.
type Backend interface {
	// Exists reports whether the backing resource is present.
	Exists() (bool, error)
	// ReadRows returns every record. Unparseable records come back as nil rows.
	ReadRows() ([][]string, error)
	// WriteRows replaces the resource with rows.
	WriteRows(rows [][]string) error
	// Name identifies the resource in messages and logs.
	Name() string
}
