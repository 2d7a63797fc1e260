package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds edgarhound API connection details
type APIConfig struct {
	Token     string `mapstructure:"token"`
	BaseURL   string `mapstructure:"base_url"`
	TimeoutMS int    `mapstructure:"timeout_ms"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	Presets           map[string]FilterPreset `mapstructure:"presets"`
}

// FilterPreset is a named, reusable filter expression
type FilterPreset struct {
	Description string `mapstructure:"description"`
	Expression  string `mapstructure:"expression"`
}

// OutputConfig contains display settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
