package config

import (
	"github.com/pders01/abref/internal/models"
	"github.com/spf13/viper"
)

// Viper keys
const (
	KeyRefsPath     = "snapshot.refs_path"
	KeyOutputFormat = "output.format"
	KeyVerbose      = "log.verbose"
)

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRefsPath, models.DefaultRefsPath)
	v.SetDefault(KeyOutputFormat, "text")
	v.SetDefault(KeyVerbose, false)
}

// GetRefsPath returns the gjson path of the reference table
func GetRefsPath() string {
	path := viper.GetString(KeyRefsPath)
	if path == "" {
		return models.DefaultRefsPath
	}
	return path
}

// GetOutputFormat returns the configured output format name
func GetOutputFormat() string {
	return viper.GetString(KeyOutputFormat)
}

// GetVerbose returns whether debug logging is enabled
func GetVerbose() bool {
	return viper.GetBool(KeyVerbose)
}
