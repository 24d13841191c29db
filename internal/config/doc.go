// Package config provides configuration parsing for the attrs server and CLI.
//
// The configuration is stored in attrs.json. This package handles loading,
// saving, and validating it, and builds the normalizer and logger the
// configuration describes.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "port": 8080,
//	    "host": "localhost",
//	    "readTimeout": "10s",
//	    "writeTimeout": "10s",
//	    "shutdownTimeout": "5s",
//	    "maxBodyBytes": 1048576
//	  },
//	  "normalize": {
//	    "maxDepth": 64
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "attrs",
//	    "path": "/metrics"
//	  },
//	  "tracing": {
//	    "enabled": true,
//	    "tracerName": "attrs"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault("attrs.json")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Address())
package config
