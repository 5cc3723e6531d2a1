package gate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/mintapp-labs/mintapp/internal/manifest"
)

// UnsupportedRuntimeError reports a Node.js version that does not satisfy
// the delegate's declared engines.node range.
type UnsupportedRuntimeError struct {
	Have string
	Want string
}

func (e *UnsupportedRuntimeError) Error() string {
	return fmt.Sprintf("you are running Node %s; the installed scripts require Node %s — upgrade Node.js to create this project", e.Have, e.Want)
}

// Check reads the installed delegate's manifest and tests runtimeVersion
// against its declared engines.node range. A manifest with no declared
// range passes trivially. The manifest is schema-validated before its
// contents are trusted.
func Check(manifestPath, runtimeVersion string) error {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("reading delegate manifest %s: %w", manifestPath, err)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return fmt.Errorf("validating delegate manifest: %w", err)
	}
	if !result.Valid {
		return fmt.Errorf("delegate manifest %s is malformed: %s", manifestPath, result.Summary())
	}

	d, err := manifest.ParseDelegate(manifestPath)
	if err != nil {
		return err
	}

	rangeStr := d.NodeRange()
	if rangeStr == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(rangeStr)
	if err != nil {
		return fmt.Errorf("delegate declares invalid engines.node range %q: %w", rangeStr, err)
	}

	version, err := parseSemver(runtimeVersion)
	if err != nil {
		return fmt.Errorf("parsing runtime version %q: %w", runtimeVersion, err)
	}

	if !constraint.Check(version) {
		return &UnsupportedRuntimeError{Have: runtimeVersion, Want: rangeStr}
	}
	return nil
}

// NodeVersion asks the local Node.js binary for its version, since that is
// the runtime the delegate will execute on. The leading "v" that
// `node --version` prints is stripped.
func NodeVersion(ctx context.Context) (string, error) {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return "", fmt.Errorf("delegate scripts require Node.js: %w", err)
	}

	out, err := exec.CommandContext(ctx, nodeBin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("querying node version: %w", err)
	}

	return strings.TrimPrefix(strings.TrimSpace(string(out)), "v"), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
