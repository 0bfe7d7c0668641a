// Structured-data application and flat serialization for the settings schema.
//
// ApplyMap consumes the nested key/value form produced by TOML decoding (and
// by "config sample" round-trips); Flatten produces the dotted flat form used
// by "config list"/"config get" and by tests. SetPath/GetPath implement
// dotted-path addressing over the known schema only — there is no reflection,
// so any path outside the schema yields a typed unknown-key error.

package settings

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/harborctl/harborctl/internal/validate"
)

// ErrUnknownKey is wrapped by every error returned for a dotted path that
// does not belong to the declared schema.
var ErrUnknownKey = errors.New("unknown config key")

// ApplyMap applies a nested key-value mapping (typically parsed from a TOML
// file) onto the settings. Known keys are type-coerced; unknown top-level or
// nested keys are collected as warnings, never errors. Field validation
// failures (bad credentials path, invalid output format, non-integer depth)
// abort with an error naming the offending key.
func (s *Settings) ApplyMap(data map[string]any) ([]string, error) {
	var warnings []string
	defaults := Default()

	for key, raw := range data {
		switch strings.ToLower(key) {
		case "harbor":
			section, err := asSection(key, raw)
			if err != nil {
				return warnings, err
			}
			w, err := s.applyHarbor(section, defaults)
			warnings = append(warnings, w...)
			if err != nil {
				return warnings, err
			}
		case "general":
			section, err := asSection(key, raw)
			if err != nil {
				return warnings, err
			}
			warnings = append(warnings, s.applyGeneral(section, defaults)...)
		case "output":
			section, err := asSection(key, raw)
			if err != nil {
				return warnings, err
			}
			w, err := s.applyOutput(section, defaults)
			warnings = append(warnings, w...)
			if err != nil {
				return warnings, err
			}
		case "shell":
			section, err := asSection(key, raw)
			if err != nil {
				return warnings, err
			}
			warnings = append(warnings, s.applyShell(section, defaults)...)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config section %q", key))
		}
	}

	return warnings, nil
}

func asSection(name string, raw any) (map[string]any, error) {
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("config section %q must be a table, got %T", name, raw)
	}
	return section, nil
}

func (s *Settings) applyHarbor(section map[string]any, defaults *Settings) ([]string, error) {
	var warnings []string
	for key, raw := range section {
		switch strings.ToLower(key) {
		case "url":
			str, err := coerceString("harbor.url", raw)
			if err != nil {
				return warnings, err
			}
			s.Harbor.URL = str
		case "username":
			str, err := coerceString("harbor.username", raw)
			if err != nil {
				return warnings, err
			}
			s.Harbor.Username = str
		case "secret":
			str, err := coerceString("harbor.secret", raw)
			if err != nil {
				return warnings, err
			}
			s.Harbor.Secret = str
		case "basicauth":
			str, err := coerceString("harbor.basicauth", raw)
			if err != nil {
				return warnings, err
			}
			s.Harbor.BasicAuth = str
		case "credentials_file":
			str, err := coerceString("harbor.credentials_file", raw)
			if err != nil {
				return warnings, err
			}
			if err := s.SetCredentialsFile(str); err != nil {
				return warnings, fmt.Errorf("harbor.credentials_file: %w", err)
			}
		case "validate_data":
			s.Harbor.ValidateData = coerceBool(raw, defaults.Harbor.ValidateData)
		case "raw_mode":
			s.Harbor.RawMode = coerceBool(raw, defaults.Harbor.RawMode)
		case "verify_tls":
			s.Harbor.VerifyTLS = coerceBool(raw, defaults.Harbor.VerifyTLS)
		case "retry":
			nested, err := asSection("harbor.retry", raw)
			if err != nil {
				return warnings, err
			}
			w, err := s.applyRetry(nested, defaults)
			warnings = append(warnings, w...)
			if err != nil {
				return warnings, err
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config key %q", "harbor."+key))
		}
	}
	return warnings, nil
}

func (s *Settings) applyRetry(section map[string]any, defaults *Settings) ([]string, error) {
	var warnings []string
	for key, raw := range section {
		switch strings.ToLower(key) {
		case "enabled":
			s.Harbor.Retry.Enabled = coerceBool(raw, defaults.Harbor.Retry.Enabled)
		case "max_attempts":
			n, err := coerceInt("harbor.retry.max_attempts", raw)
			if err != nil {
				return warnings, err
			}
			s.Harbor.Retry.MaxAttempts = n
		case "max_time_seconds":
			n, err := coerceInt("harbor.retry.max_time_seconds", raw)
			if err != nil {
				return warnings, err
			}
			s.Harbor.Retry.MaxTimeSeconds = n
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config key %q", "harbor.retry."+key))
		}
	}
	return warnings, nil
}

func (s *Settings) applyGeneral(section map[string]any, defaults *Settings) []string {
	var warnings []string
	for key, raw := range section {
		switch strings.ToLower(key) {
		case "confirm_deletion":
			s.General.ConfirmDeletion = coerceBool(raw, defaults.General.ConfirmDeletion)
		case "confirm_enumeration":
			s.General.ConfirmEnumeration = coerceBool(raw, defaults.General.ConfirmEnumeration)
		case "warnings":
			s.General.Warnings = coerceBool(raw, defaults.General.Warnings)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config key %q", "general."+key))
		}
	}
	return warnings
}

func (s *Settings) applyOutput(section map[string]any, defaults *Settings) ([]string, error) {
	var warnings []string
	for key, raw := range section {
		switch strings.ToLower(key) {
		case "format":
			str, err := coerceString("output.format", raw)
			if err != nil {
				return warnings, err
			}
			if !ValidOutputFormat(str) {
				return warnings, fmt.Errorf("output.format: %q is not a valid format (table, json)", str)
			}
			s.Output.Format = strings.ToLower(str)
		case "paging":
			s.Output.Paging = coerceBool(raw, defaults.Output.Paging)
		case "pager":
			str, err := coerceString("output.pager", raw)
			if err != nil {
				return warnings, err
			}
			s.Output.Pager = str
		case "table":
			nested, err := asSection("output.table", raw)
			if err != nil {
				return warnings, err
			}
			w, err := s.applyTable(nested, defaults)
			warnings = append(warnings, w...)
			if err != nil {
				return warnings, err
			}
		case "json":
			nested, err := asSection("output.json", raw)
			if err != nil {
				return warnings, err
			}
			w, err := s.applyJSON(nested, defaults)
			warnings = append(warnings, w...)
			if err != nil {
				return warnings, err
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config key %q", "output."+key))
		}
	}
	return warnings, nil
}

func (s *Settings) applyTable(section map[string]any, defaults *Settings) ([]string, error) {
	var warnings []string
	for key, raw := range section {
		switch strings.ToLower(key) {
		case "description":
			s.Output.Table.Description = coerceBool(raw, defaults.Output.Table.Description)
		case "max_depth":
			n, err := coerceInt("output.table.max_depth", raw)
			if err != nil {
				return warnings, err
			}
			depth, warning := NormalizeMaxDepth(n)
			if warning != "" {
				warnings = append(warnings, warning)
			}
			s.Output.Table.MaxDepth = depth
		case "compact":
			s.Output.Table.Compact = coerceBool(raw, defaults.Output.Table.Compact)
		case "row_style":
			style, err := NormalizeRowStyle(raw)
			if err != nil {
				return warnings, fmt.Errorf("output.table.row_style: %w", err)
			}
			s.Output.Table.RowStyle = style
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config key %q", "output.table."+key))
		}
	}
	return warnings, nil
}

func (s *Settings) applyJSON(section map[string]any, defaults *Settings) ([]string, error) {
	var warnings []string
	for key, raw := range section {
		switch strings.ToLower(key) {
		case "indent":
			n, err := coerceInt("output.json.indent", raw)
			if err != nil {
				return warnings, err
			}
			s.Output.JSON.Indent = n
		case "sort_keys":
			s.Output.JSON.SortKeys = coerceBool(raw, defaults.Output.JSON.SortKeys)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config key %q", "output.json."+key))
		}
	}
	return warnings, nil
}

func (s *Settings) applyShell(section map[string]any, defaults *Settings) []string {
	var warnings []string
	for key, raw := range section {
		switch strings.ToLower(key) {
		case "history":
			s.Shell.History = coerceBool(raw, defaults.Shell.History)
		case "history_file":
			if str, err := coerceString("shell.history_file", raw); err == nil {
				s.Shell.HistoryFile = str
			} else {
				warnings = append(warnings, err.Error())
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown config key %q", "shell."+key))
		}
	}
	return warnings
}

// coerceBool converts file-loaded values into booleans. Actual booleans pass
// through; the strings "true"/"false" normalize to booleans; any other value
// falls back to the field's schema default. This tolerant behavior applies
// only to file loading — SetPath and the env overlay use the stricter
// ParseBoolSetting.
func coerceBool(raw any, def bool) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true
		case "false":
			return false
		}
		return def
	default:
		return def
	}
}

// coerceInt converts any integer-coercible value into an int, erroring with
// the offending key name otherwise.
func coerceInt(key string, raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not an integer", key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s: expected an integer, got %T", key, raw)
	}
}

func coerceString(key string, raw any) (string, error) {
	str, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %T", key, raw)
	}
	return str, nil
}

// ParseBoolSetting parses the boolean spellings accepted from environment
// variables and "config set": true/false, 1/0, yes/no, on/off, any case.
func ParseBoolSetting(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean value (true/false, 1/0, yes/no, on/off)", value)
}

// Flatten serializes the settings into a flat dotted-key form. Unset values
// are rendered as the empty string since the flat form has no native null.
// When exposeSecrets is false the secret, basicauth token, and credentials
// file path are replaced with SecretMask if present and non-empty; the
// in-memory object is never altered.
func (s *Settings) Flatten(exposeSecrets bool) map[string]string {
	mask := func(v string) string {
		if v == "" || exposeSecrets {
			return v
		}
		return SecretMask
	}

	rowStyle := ""
	if s.Output.Table.RowStyle != nil {
		rowStyle = strings.Join(s.Output.Table.RowStyle[:], ",")
	}

	return map[string]string{
		"harbor.url":                    s.Harbor.URL,
		"harbor.username":               s.Harbor.Username,
		"harbor.secret":                 mask(s.Harbor.Secret),
		"harbor.basicauth":              mask(s.Harbor.BasicAuth),
		"harbor.credentials_file":       mask(s.Harbor.CredentialsFile),
		"harbor.validate_data":          strconv.FormatBool(s.Harbor.ValidateData),
		"harbor.raw_mode":               strconv.FormatBool(s.Harbor.RawMode),
		"harbor.verify_tls":             strconv.FormatBool(s.Harbor.VerifyTLS),
		"harbor.retry.enabled":          strconv.FormatBool(s.Harbor.Retry.Enabled),
		"harbor.retry.max_attempts":     strconv.Itoa(s.Harbor.Retry.MaxAttempts),
		"harbor.retry.max_time_seconds": strconv.Itoa(s.Harbor.Retry.MaxTimeSeconds),
		"general.confirm_deletion":      strconv.FormatBool(s.General.ConfirmDeletion),
		"general.confirm_enumeration":   strconv.FormatBool(s.General.ConfirmEnumeration),
		"general.warnings":              strconv.FormatBool(s.General.Warnings),
		"output.format":                 s.Output.Format,
		"output.paging":                 strconv.FormatBool(s.Output.Paging),
		"output.pager":                  s.Output.Pager,
		"output.table.description":      strconv.FormatBool(s.Output.Table.Description),
		"output.table.max_depth":        strconv.Itoa(s.Output.Table.MaxDepth),
		"output.table.compact":          strconv.FormatBool(s.Output.Table.Compact),
		"output.table.row_style":        rowStyle,
		"output.json.indent":            strconv.Itoa(s.Output.JSON.Indent),
		"output.json.sort_keys":         strconv.FormatBool(s.Output.JSON.SortKeys),
		"shell.history":                 strconv.FormatBool(s.Shell.History),
		"shell.history_file":            s.Shell.HistoryFile,
	}
}

// Paths returns every known dotted config path in sorted order. Used by
// "config list" display and help output.
func (s *Settings) Paths() []string {
	flat := s.Flatten(true)
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// GetPath returns the flat serialized value at a dotted config path.
// Secrets are returned unmasked; callers that display values decide about
// redaction themselves.
func (s *Settings) GetPath(path string) (string, error) {
	flat := s.Flatten(true)
	value, ok := flat[path]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, path)
	}
	return value, nil
}

// SetPath updates one field addressed by a dotted path, validating that the
// path belongs to the declared schema and that the value satisfies the
// field's rules. Returns a non-fatal warning message when a coercion was
// applied (currently only negative max_depth). Used by "config set" and the
// environment overlay.
func (s *Settings) SetPath(path, value string) (string, error) {
	setBool := func(target *bool) (string, error) {
		b, err := ParseBoolSetting(value)
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		*target = b
		return "", nil
	}
	setIntRange := func(target *int, min, max int) (string, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("%s: %q is not an integer", path, value)
		}
		if err := validate.ValidateIntRange(n, min, max, path); err != nil {
			return "", err
		}
		*target = n
		return "", nil
	}

	switch path {
	case "harbor.url":
		s.Harbor.URL = value
		return "", nil
	case "harbor.username":
		s.Harbor.Username = value
		return "", nil
	case "harbor.secret":
		s.Harbor.Secret = value
		return "", nil
	case "harbor.basicauth":
		s.Harbor.BasicAuth = value
		return "", nil
	case "harbor.credentials_file":
		if err := s.SetCredentialsFile(value); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return "", nil
	case "harbor.validate_data":
		return setBool(&s.Harbor.ValidateData)
	case "harbor.raw_mode":
		return setBool(&s.Harbor.RawMode)
	case "harbor.verify_tls":
		return setBool(&s.Harbor.VerifyTLS)
	case "harbor.retry.enabled":
		return setBool(&s.Harbor.Retry.Enabled)
	case "harbor.retry.max_attempts":
		return setIntRange(&s.Harbor.Retry.MaxAttempts, 1, 100)
	case "harbor.retry.max_time_seconds":
		return setIntRange(&s.Harbor.Retry.MaxTimeSeconds, 1, 3600)
	case "general.confirm_deletion":
		return setBool(&s.General.ConfirmDeletion)
	case "general.confirm_enumeration":
		return setBool(&s.General.ConfirmEnumeration)
	case "general.warnings":
		return setBool(&s.General.Warnings)
	case "output.format":
		if !ValidOutputFormat(value) {
			return "", fmt.Errorf("%s: %q is not a valid format (table, json)", path, value)
		}
		s.Output.Format = strings.ToLower(value)
		return "", nil
	case "output.paging":
		return setBool(&s.Output.Paging)
	case "output.pager":
		s.Output.Pager = value
		return "", nil
	case "output.table.description":
		return setBool(&s.Output.Table.Description)
	case "output.table.max_depth":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("%s: %q is not an integer", path, value)
		}
		depth, warning := NormalizeMaxDepth(n)
		s.Output.Table.MaxDepth = depth
		return warning, nil
	case "output.table.compact":
		return setBool(&s.Output.Table.Compact)
	case "output.table.row_style":
		style, err := NormalizeRowStyle(splitStyleList(value))
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		s.Output.Table.RowStyle = style
		return "", nil
	case "output.json.indent":
		return setIntRange(&s.Output.JSON.Indent, 0, 16)
	case "output.json.sort_keys":
		return setBool(&s.Output.JSON.SortKeys)
	case "shell.history":
		return setBool(&s.Shell.History)
	case "shell.history_file":
		s.Shell.HistoryFile = value
		return "", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, path)
	}
}

// splitStyleList turns a comma-separated style value into the slice shape
// NormalizeRowStyle accepts. An empty string stays a plain string so it
// normalizes to unset.
func splitStyleList(value string) any {
	if !strings.Contains(value, ",") {
		return value
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
