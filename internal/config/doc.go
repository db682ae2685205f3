// Package config handles YAML configuration loading with environment
// variable substitution.
//
// Configuration files support ${VAR} syntax so the API key and secret can
// stay out of the file itself and come from the environment.
package config
