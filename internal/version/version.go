// Package version provides centralized version information for harborctl.
// The CLI version is kept separate from the supported Harbor API version so
// the tool can evolve independently of the registry API surface it targets.
// All versions follow semantic versioning (semver) conventions.

package version

// HarborctlVersion holds the current harborctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const HarborctlVersion = "0.1.0-dev"

// APIVersion holds the Harbor registry API version this CLI speaks.
// Used as the URL path prefix for every remote call.
const APIVersion = "v2.0"
