// Package config loads client configuration from YAML files, .env files,
// and environment variables, in that order of precedence (later wins).
//
//	var cfg struct {
//	    API httpclient.Config `mapstructure:"api"`
//	    Log logger.Config     `mapstructure:"log"`
//	}
//	err := config.Load("todo-client", &cfg)
//
// The FileSystem seam lets tests supply fake files without touching disk.
package config
