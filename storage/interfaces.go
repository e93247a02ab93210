package storage

// SnapshotWriter is the interface any snapshot sink must satisfy.
type SnapshotWriter interface {
	Write(name string, data []byte) (string, error)
	Close() error
}
