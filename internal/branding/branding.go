// Package branding provides compile-time identity values for the launcher.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binary. The launcher is installed globally and rarely
// updated, so everything here must stay stable across releases; evolving
// behavior belongs in the delegate package, not in these values.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// defaults holds the parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string   `yaml:"cli_name"`
	DisplayName     string   `yaml:"display_name"`
	Description     string   `yaml:"description"`
	Tagline         string   `yaml:"tagline"`
	HomeDir         string   `yaml:"home_dir"`
	EnvPrefix       string   `yaml:"env_prefix"`
	GoModule        string   `yaml:"go_module"`
	DelegatePackage string   `yaml:"delegate_package"`
	DelegateEntry   string   `yaml:"delegate_entry"`
	DeniedNames     []string `yaml:"denied_names"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "mintapp",
			DisplayName:     "Mintapp",
			Description:     "Bootstrapper for new Mintapp projects",
			Tagline:         "Mint a new app in seconds.",
			HomeDir:         ".mintapp",
			EnvPrefix:       "MINTAPP",
			GoModule:        "github.com/mintapp-labs/mintapp",
			DelegatePackage: "mintapp-scripts",
			DelegateEntry:   "scripts/init.js",
			DeniedNames:     []string{"react", "react-dom", "mintapp-scripts"},
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "mintapp").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Mintapp").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// Tagline returns the one-line slogan printed in the welcome banner.
func Tagline() string { load(); return defaults.Tagline }

// HomeDir returns the dot-directory name under $HOME (e.g., ".mintapp").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MINTAPP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DelegatePackage returns the npm package name that carries all real
// scaffolding logic (e.g., "mintapp-scripts").
func DelegatePackage() string { load(); return defaults.DelegatePackage }

// DelegateEntry returns the entry-point path inside the delegate package,
// relative to the package root (e.g., "scripts/init.js").
func DelegateEntry() string { load(); return defaults.DelegateEntry }

// DependencyDenylist returns the package names a generated project will
// itself depend on. A project must not share a name with any of them, or
// npm would refuse to install that dependency into it.
func DependencyDenylist() []string {
	load()
	out := make([]string, len(defaults.DeniedNames))
	copy(out, defaults.DeniedNames)
	return out
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "MINTAPP_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
