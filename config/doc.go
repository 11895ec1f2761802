// Package config loads lvring settings with viper: built-in defaults, an
// optional YAML file, then LVRING_* environment variables, in increasing
// precedence. Validate rejects values the containers cannot honor.
package config
