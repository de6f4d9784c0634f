// Package config holds the tunable thresholds of the MCS engine and loads
// them from TOML.
//
// A thresholds file looks like:
//
//	[thresholds]
//	sequential_limit   = 30
//	large_graph_limit  = 100
//	fallback_dedge_cap = 50
//	fork_threshold     = 20
//	workers            = 8
//	budget_factor      = 200
//	signature_width    = 6
//	max_cliques        = 0
//	max_results        = 8
//	timeout            = "5s"
//
// Missing keys take their defaults; explicit zero for a key where zero is
// meaningless is treated as missing.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidThreshold reports a negative or otherwise unusable value.
var ErrInvalidThreshold = errors.New("config: invalid threshold")

// Default values.
const (
	DefaultSequentialLimit  = 30
	DefaultLargeGraphLimit  = 100
	DefaultFallbackDEdgeCap = 50
	DefaultForkThreshold    = 20
	DefaultBudgetFactor     = 200
	DefaultSignatureWidth   = 6
	DefaultMaxResults       = 8
)

// Duration wraps time.Duration for TOML text values such as "1.5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// Thresholds are the named size cutoffs and limits of one search.
type Thresholds struct {
	// SequentialLimit: when the smaller graph has at most this many
	// nodes the compatibility graph is built sequentially.
	SequentialLimit int `toml:"sequential_limit"`
	// LargeGraphLimit: when both graphs exceed it the fallback build is
	// used directly.
	LargeGraphLimit int `toml:"large_graph_limit"`
	// FallbackDEdgeCap: below this size the fallback build keeps every
	// unbonded d-edge.
	FallbackDEdgeCap int `toml:"fallback_dedge_cap"`
	// ForkThreshold is the widest row range a parallel task handles alone.
	ForkThreshold int `toml:"fork_threshold"`
	// Workers bounds parallel builder goroutines.
	Workers int `toml:"workers"`
	// BudgetFactor: extension attempts per input node.
	BudgetFactor int `toml:"budget_factor"`
	// SignatureWidth is the number of neighbor labels in a signature.
	SignatureWidth int `toml:"signature_width"`
	// MaxCliques caps the maximum cliques extended; 0 means all.
	MaxCliques int `toml:"max_cliques"`
	// MaxResults caps distinct mappings kept per clique.
	MaxResults int `toml:"max_results"`
	// Timeout is a soft wall-clock limit on the whole search; 0 disables it.
	Timeout Duration `toml:"timeout"`
}

type file struct {
	Thresholds Thresholds `toml:"thresholds"`
}

// Default returns the built-in thresholds.
func Default() Thresholds {
	var t Thresholds
	t.applyDefaults()
	return t
}

func (t *Thresholds) applyDefaults() {
	if t.SequentialLimit == 0 {
		t.SequentialLimit = DefaultSequentialLimit
	}
	if t.LargeGraphLimit == 0 {
		t.LargeGraphLimit = DefaultLargeGraphLimit
	}
	if t.FallbackDEdgeCap == 0 {
		t.FallbackDEdgeCap = DefaultFallbackDEdgeCap
	}
	if t.ForkThreshold == 0 {
		t.ForkThreshold = DefaultForkThreshold
	}
	if t.Workers == 0 {
		t.Workers = runtime.GOMAXPROCS(0)
	}
	if t.BudgetFactor == 0 {
		t.BudgetFactor = DefaultBudgetFactor
	}
	if t.SignatureWidth == 0 {
		t.SignatureWidth = DefaultSignatureWidth
	}
	if t.MaxResults == 0 {
		t.MaxResults = DefaultMaxResults
	}
}

// Validate rejects negative values.
func (t Thresholds) Validate() error {
	const method = "Validate"
	checks := []struct {
		name string
		v    int
	}{
		{"sequential_limit", t.SequentialLimit},
		{"large_graph_limit", t.LargeGraphLimit},
		{"fallback_dedge_cap", t.FallbackDEdgeCap},
		{"fork_threshold", t.ForkThreshold},
		{"workers", t.Workers},
		{"budget_factor", t.BudgetFactor},
		{"signature_width", t.SignatureWidth},
		{"max_cliques", t.MaxCliques},
		{"max_results", t.MaxResults},
	}
	for _, c := range checks {
		if c.v < 0 {
			return fmt.Errorf("%s: %s=%d: %w", method, c.name, c.v, ErrInvalidThreshold)
		}
	}
	if t.Timeout < 0 {
		return fmt.Errorf("%s: timeout=%s: %w", method, t.Timeout.Duration(), ErrInvalidThreshold)
	}

	return nil
}

// Decode parses TOML text, applies defaults and validates.
func Decode(text string) (Thresholds, error) {
	const method = "Decode"
	var f file
	if _, err := toml.Decode(text, &f); err != nil {
		return Thresholds{}, fmt.Errorf("%s: %w", method, err)
	}
	f.Thresholds.applyDefaults()
	if err := f.Thresholds.Validate(); err != nil {
		return Thresholds{}, fmt.Errorf("%s: %w", method, err)
	}

	return f.Thresholds, nil
}

// Load reads and decodes the thresholds file at path.
func Load(path string) (Thresholds, error) {
	const method = "Load"
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("%s: read %s: %w", method, path, err)
	}

	return Decode(string(data))
}

// Encode writes t as a thresholds file.
func (t Thresholds) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(file{Thresholds: t})
}
