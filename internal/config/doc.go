// Package config reads the launcher's optional configuration from
// ~/.mintapp/config.yaml and MINTAPP_* environment variables. The launcher
// deliberately keeps its configurable surface tiny (package-manager binary,
// verbosity default); anything richer belongs in the delegate package.
package config
