package mailsift

// Extractor extracts validated email addresses from a document.
// Implementations must be safe for concurrent use.
type Extractor interface {
	// Extract returns the deduplicated, lower-cased addresses found in
	// doc, in discovery order, bounded by configuration. It always
	// returns a (possibly empty) result; there are no fatal conditions.
	Extract(doc DocumentView) []string
}

// Ensure Engine implements Extractor.
var _ Extractor = (*Engine)(nil)

// Engine is the extraction pipeline: aggregate document sources, scan each
// for candidates, validate, then dedup and bound the result. It holds no
// mutable state between calls, so a single Engine may be shared across
// goroutines; independent extractions never observe each other.
type Engine struct {
	config Config
}

// NewEngine returns an Engine with cfg applied. Out-of-range settings are
// corrected to defaults.
func NewEngine(cfg Config) *Engine {
	return &Engine{config: cfg.normalize()}
}

// Config returns the engine's effective (normalized) configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Extract runs the pipeline over doc. A nil document yields an empty
// result rather than an error; extraction is best-effort by design.
func (e *Engine) Extract(doc DocumentView) []string {
	if doc == nil {
		return []string{}
	}

	var validated []string
	for _, src := range Aggregate(doc) {
		for _, cand := range Scan(src.Text, src.Kind, e.config.PerSourceCandidateCap) {
			if IsValid(cand.Text) {
				validated = append(validated, cand.Text)
			}
		}
	}

	return Finalize(validated, e.config)
}
