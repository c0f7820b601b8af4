// Package config loads hoopscore settings from a JSON5 file.
//
// Settings are read from <name>.json5 and then overridden by <name>.local.json5 if
// present. Missing files are not an error; defaults fill every unset key.
package config
