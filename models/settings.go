package models

// ConfigSetting enumerates the client-level settings that can be read and
// written through the provider. The set is intentionally small and extensible.
type ConfigSetting int

const (
	// ConfigSettingDeveloperMode toggles developer mode: when enabled the
	// provider bypasses the cache-expiration short-circuit so every Fetch
	// call reaches the backend. Stored as "1" (enabled) or "0" (disabled).
	ConfigSettingDeveloperMode ConfigSetting = iota
)

// String returns the canonical name of the setting.
func (s ConfigSetting) String() string {
	switch s {
	case ConfigSettingDeveloperMode:
		return "developer_mode"
	default:
		return "unknown"
	}
}

// Setting values are plain strings so new non-boolean settings do not require
// an API change.
const (
	SettingEnabled  = "1"
	SettingDisabled = "0"
)
