// Field validators for the settings schema.
//
// These rules encode behavior users depend on and must be preserved exactly:
// empty credentials paths normalize to "unset" rather than resolving to the
// current directory, row styles accept several input shapes, and negative
// nesting depths are coerced with a warning instead of rejected.

package settings

import (
	"fmt"
	"os"
	"strings"
)

// SetCredentialsFile validates and assigns the credentials file path.
// An empty string normalizes to "unset" rather than a literal empty path,
// since an empty path would otherwise resolve relative to the current
// directory. A non-empty path must reference an existing regular file.
func (s *Settings) SetCredentialsFile(path string) error {
	if strings.TrimSpace(path) == "" {
		s.Harbor.CredentialsFile = ""
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("credentials file %q does not exist", path)
	}
	if info.IsDir() {
		return fmt.Errorf("credentials path %q is a directory, not a regular file", path)
	}

	s.Harbor.CredentialsFile = path
	return nil
}

// NormalizeRowStyle converts the accepted row-style input shapes into the
// canonical two-element form:
//
//	"blue"                  -> ("blue", "blue")
//	["blue"]                -> ("blue", "blue")
//	["blue", "red"]         -> ("blue", "red")
//	["blue", "red", "x"]    -> ("blue", "red")
//	"" or [] or [""]        -> nil (unset)
//
// Any other value type is rejected so config typos fail loudly rather than
// producing an unstyled table.
func NormalizeRowStyle(value any) (*[2]string, error) {
	var parts []string

	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v != "" {
			parts = []string{v}
		}
	case []string:
		parts = v
	case []any:
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("row style entries must be strings, got %T", item)
			}
			parts = append(parts, str)
		}
	case *[2]string:
		if v == nil {
			return nil, nil
		}
		parts = v[:]
	default:
		return nil, fmt.Errorf("row style must be a string or a list of strings, got %T", value)
	}

	// Drop empty entries so all-empty input normalizes to unset
	filtered := parts[:0]
	for _, p := range parts {
		if p != "" {
			filtered = append(filtered, p)
		}
	}

	switch len(filtered) {
	case 0:
		return nil, nil
	case 1:
		return &[2]string{filtered[0], filtered[0]}, nil
	default:
		return &[2]string{filtered[0], filtered[1]}, nil
	}
}

// NormalizeMaxDepth clamps negative nesting depths to zero and returns a
// warning message describing the coercion. Negative depths are slated to
// become a hard validation error in a future release; until then the
// permissive behavior is kept for compatibility with existing config files
// (see DESIGN.md).
func NormalizeMaxDepth(depth int) (int, string) {
	if depth < 0 {
		return 0, fmt.Sprintf("output.table.max_depth %d is negative, using 0 (negative depths will become an error in a future release)", depth)
	}
	return depth, ""
}
