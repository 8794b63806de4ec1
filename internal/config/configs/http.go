package configs

import "time"

// HTTP configures the HTTP server.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// MaxUploadBytes caps create and update request bodies.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	// RunTimeout is the deadline of a single serve request.
	RunTimeout time.Duration `env:"RUN_TIMEOUT" envDefault:"2s"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
