// Package config holds the settings used to open a phonemescape library:
// storage backend and location, an optional catalog file, and similarity
// engine tuning. Configs are built with functional options or loaded from a
// YAML file.
package config
