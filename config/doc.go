// Package config loads runner settings from an optional HCL file and builds
// the process logger.
//
// A config file looks like:
//
//	data_dir     = "${env.HOME}/puzzles"
//	file_pattern = "quest%02d_%d.txt"
//	radius       = 10
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Every attribute is optional; Default supplies the rest. Expressions may
// read process environment variables through the env object.
package config
