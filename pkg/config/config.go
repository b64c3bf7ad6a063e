// Package config loads optional user defaults for the astro-data CLI.
// Config values are defaults only: everything still passes the same
// validation as flag or prompt input.
package config

// Defaults holds the user-configurable default values.
type Defaults struct {
	// Timezone used for display when no --timezone flag is given.
	Timezone string
	// Renderer selects the default presenter: "styled" or "plain".
	Renderer string
	// Debug enables verbose logging without the --debug flag.
	Debug bool
}

// Provider is a source of Defaults.
type Provider interface {
	Load() (*Defaults, error)
}

// Builtin returns the compiled-in defaults used when no config file
// exists.
func Builtin() *Defaults {
	return &Defaults{
		Timezone: "UTC",
		Renderer: "styled",
	}
}
