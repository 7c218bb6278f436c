// Package config provides configuration management for the tour CLI.
//
// Values are layered with koanf: defaults, then a tour.yaml file, then
// TOUR_* environment variables, then explicitly set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output  string   `koanf:"output" yaml:"output"`
	Indent  string   `koanf:"indent" yaml:"indent"`
	Verbose bool     `koanf:"verbose" yaml:"verbose"`
	NoColor bool     `koanf:"no_color" yaml:"no_color"`
	Lessons []string `koanf:"lessons" yaml:"lessons"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=plain
	DefaultIndent = "\t"
)

// DefaultLessons is the lesson list `tour run` uses without arguments.
func DefaultLessons() []string {
	return []string{"12"}
}

// Config file names, in lookup order.
var configFileNames = []string{"tour.yaml", "tour.yml"}
