// Package config provides explicit engine configuration for quench.
//
// Configuration is a plain value loaded from a YAML or TOML file, or
// built in code through functional options. There is no layering,
// watching, or environment merging; hosts that want dynamic settings
// reload the file and reapply the result themselves.
//
// The zero value of Config is not usable; start from Default and
// adjust, or load a file with LoadFile. Validate reports the first
// problem it finds using the package's sentinel errors, so callers can
// branch with errors.Is.
package config
