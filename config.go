package mailsift

// Result and candidate bounds. MaxResultsCeiling is a hard ceiling that
// configuration cannot raise.
const (
	DefaultMaxResults = 500
	MaxResultsCeiling = 1000
)

// Config controls extraction behavior. The zero value is not useful;
// start from DefaultConfig and override fields as needed.
//
// Invalid values are corrected to defaults rather than rejected: this is a
// best-effort extraction utility, and silently clamping a bad cap cannot
// hide data corruption the way it would in a strict parser.
type Config struct {
	// MaxResults caps the size of the final result set.
	// Defaults to DefaultMaxResults; never exceeds MaxResultsCeiling.
	MaxResults int

	// PerSourceCandidateCap bounds candidates taken from a single raw
	// source. Defaults to DefaultCandidateCap.
	PerSourceCandidateCap int

	// RemoveDuplicates drops case-insensitive duplicates, keeping the
	// first occurrence. Defaults to true.
	RemoveDuplicates bool

	// Deny lists additional addresses or domains to exclude from results,
	// on top of the built-in placeholder deny list. Entries containing
	// '@' match whole addresses; others match domains. Matching is exact
	// and case-insensitive.
	Deny []string
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{
		MaxResults:            DefaultMaxResults,
		PerSourceCandidateCap: DefaultCandidateCap,
		RemoveDuplicates:      true,
	}
}

// normalize corrects out-of-range values to their nearest valid setting.
func (c Config) normalize() Config {
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.MaxResults > MaxResultsCeiling {
		c.MaxResults = MaxResultsCeiling
	}
	if c.PerSourceCandidateCap <= 0 {
		c.PerSourceCandidateCap = DefaultCandidateCap
	}
	return c
}
