package config

// Config holds the application configuration.
type Config struct {
	CollectionPath string   `yaml:"collectionPath" validate:"required"`
	SnapshotPath   string   `yaml:"snapshotPath" validate:"required"`
	Timeline       Timeline `yaml:"timeline"`
	Logger         Logger   `yaml:"logger"`
	Server         Server   `yaml:"server"`
	Watcher        Watcher  `yaml:"watcher"`
}

// Timeline holds the configuration for the location-history adapter.
type Timeline struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	HTMXDebug bool   `yaml:"htmx_debug"`
}

// Server holds the configuration for the Fiber server
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Watcher holds the configuration for the collection file watcher
type Watcher struct {
	Enabled bool `yaml:"enabled"`
}
