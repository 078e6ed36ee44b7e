// Package config provides configuration management for the node config server.
//
// It uses Viper for loading configuration from environment variables, with an
// optional .env file loaded first. Defaults come from the `default` struct tags
// of the partial configurations.
//
// # Configuration Structure
//
//   - Server: listen host and port (SERVER_HOST, SERVER_PORT)
//   - Nodes: override directory, format and source (NODES_DIR, NODES_FORMAT, NODES_SOURCE, NODES_PREFIX)
//   - Storage: S3/MinIO credentials and bucket for the s3 source
//   - Log: level, format and log file
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
