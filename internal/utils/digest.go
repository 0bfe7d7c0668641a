// Package utils provides common utility functions shared across harborctl.
//
// This file implements digest truncation used wherever OCI content digests
// appear in tables or log lines. Registry digests are long ("sha256:" plus
// 64 hex characters); truncation keeps the algorithm prefix and a short
// unique-enough portion of the hex, similar to how container tooling shows
// short image IDs.
package utils

import "strings"

// shortDigestHexLen is the number of hex characters kept after the algorithm
// prefix when truncating digests for display.
const shortDigestHexLen = 10

// TruncateDigest shortens an OCI content digest for display while keeping the
// algorithm prefix intact. "sha256:4ab6a8c3..." becomes "sha256:4ab6a8c3e0".
// Values without an algorithm prefix or already short values are returned
// unchanged, so the function is safe for arbitrary identifier columns.
func TruncateDigest(digest string) string {
	algo, hex, ok := strings.Cut(digest, ":")
	if !ok {
		if len(digest) <= shortDigestHexLen {
			return digest
		}
		return digest[:shortDigestHexLen]
	}
	if len(hex) <= shortDigestHexLen {
		return digest
	}
	return algo + ":" + hex[:shortDigestHexLen]
}
