package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Processing ProcessingConfig `mapstructure:"processing"`
	Timeline   TimelineConfig   `mapstructure:"timeline"`
	Sessions   SessionsConfig   `mapstructure:"sessions"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Security   SecurityConfig   `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	EnableWAL             bool          `mapstructure:"enable_wal"`
	EnableForeignKeys     bool          `mapstructure:"enable_foreign_keys"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// ProcessingConfig contains media probe and job worker settings
type ProcessingConfig struct {
	Workers         int           `mapstructure:"workers"`
	MaxQueueSize    int           `mapstructure:"max_queue_size"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	JobTimeout      time.Duration `mapstructure:"job_timeout"`
	RetryAttempts   int           `mapstructure:"retry_attempts"`
	RetryDelay      time.Duration `mapstructure:"retry_delay"`
	FFprobePath     string        `mapstructure:"ffprobe_path"`
	FFprobeTimeout  time.Duration `mapstructure:"ffprobe_timeout"`
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
	UserAgent       string        `mapstructure:"user_agent"`
	JobRetention    time.Duration `mapstructure:"job_retention"`
}

// TimelineConfig contains playback and editing tunables
type TimelineConfig struct {
	DriftThreshold         float64       `mapstructure:"drift_threshold"`
	FrameInterval          time.Duration `mapstructure:"frame_interval"`
	DragDebounce           time.Duration `mapstructure:"drag_debounce"`
	DragGrace              time.Duration `mapstructure:"drag_grace"`
	MinSceneDuration       float64       `mapstructure:"min_scene_duration"`
	DefaultSegmentDuration float64       `mapstructure:"default_segment_duration"`
	LabelColumnWidth       int           `mapstructure:"label_column_width"`
	DefaultLanguage        string        `mapstructure:"default_language"`
}

// SessionsConfig contains playback session lifecycle settings
type SessionsConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// StorageConfig contains scratch storage settings
type StorageConfig struct {
	TempDir         string        `mapstructure:"temp_dir"`
	MaxTempAge      time.Duration `mapstructure:"max_temp_age"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}
