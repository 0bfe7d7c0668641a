// Package logging provides digest formatting utilities for consistent artifact
// identification across all logging contexts in harborctl.
//
// Implements intelligent digest truncation that preserves full content digests
// in debug contexts while providing user-friendly short digests in info/warning
// contexts, improving log readability without sacrificing traceability when
// detailed debugging is needed.
//
// DIGEST FORMATTING STRATEGY:
//   - Debug logs: Full "sha256:<64 hex>" digests for complete traceability
//   - Info/Warn/Error/Success logs: Truncated digests for readability
//   - Consistent formatting across log output and table display
package logging

import "github.com/harborctl/harborctl/internal/utils"

// FormatDigest formats a content digest for logging based on the current log
// level context. Returns the full digest when debug logging is enabled so
// operators can correlate with registry-side logs, and the truncated form
// otherwise to keep operational logs readable.
func FormatDigest(digest string) string {
	if DebugEnabled() {
		return digest
	}
	return utils.TruncateDigest(digest)
}
