package models

// Source identifies the provenance of a resolved configuration value.
// Resolution priority is always SourceRemote > SourceDefault > SourceStatic.
type Source int

const (
	// SourceStatic is the built-in fallback used when a key has neither a
	// remote value nor a registered default.
	SourceStatic Source = iota

	// SourceDefault marks a value supplied by the application via SetDefaults.
	SourceDefault

	// SourceRemote marks a value fetched from the remote config backend.
	SourceRemote
)

// String returns the canonical lower-case name of the source.
// Unknown values are rendered as "unknown" rather than panicking.
func (s Source) String() string {
	switch s {
	case SourceStatic:
		return "static"
	case SourceDefault:
		return "default"
	case SourceRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three declared sources.
func (s Source) Valid() bool {
	return s == SourceStatic || s == SourceDefault || s == SourceRemote
}

// Value is an opaque resolved configuration value together with its
// provenance. Data holds the textual representation the backend or the
// defaults registry stored for the key; typed accessors coerce it on demand.
type Value struct {
	// Data is the raw textual form of the value. Empty for static fallbacks.
	Data string

	// Source records where the value came from.
	Source Source
}

// Bytes returns the value payload as a byte slice. The returned slice is a
// copy; mutating it does not affect the stored value.
func (v Value) Bytes() []byte {
	return []byte(v.Data)
}

// ValueInfo carries the metadata of a single typed lookup: where the value
// came from and whether the textual form strictly matched the requested type.
//
// ConversionSuccessful is a validity flag, not an availability flag: typed
// getters always return a best-effort value, and the flag tells the caller
// whether that value can be trusted.
type ValueInfo struct {
	Source               Source
	ConversionSuccessful bool
}
