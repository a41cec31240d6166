package steiner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"
)

// WinCalculation selects how a triple's benefit is scored.
type WinCalculation int

const (
	// WinAbsolute scores gain - cost.
	WinAbsolute WinCalculation = iota
	// WinRelative scores gain / cost.
	WinRelative
)

// TripleGeneration selects how candidate triples are produced.
type TripleGeneration int

const (
	// GenerationExhaustive searches the center of every terminal triple over
	// all vertices.
	GenerationExhaustive TripleGeneration = iota
	// GenerationVoronoi restricts the center to the Voronoi regions of the
	// triple's terminals.
	GenerationVoronoi
	// GenerationOnDemand builds one best triple per round inside the
	// contraction loop instead of a precomputed pool.
	GenerationOnDemand
)

// TripleReducing selects whether unprofitable triples are dropped eagerly.
type TripleReducing int

const (
	// ReducingOn drops non-positive and already contracted triples.
	ReducingOn TripleReducing = iota
	// ReducingOff keeps every generated triple.
	ReducingOff
)

// SaveCalculation selects the save-edge structure.
type SaveCalculation int

const (
	// SaveStaticTree precomputes every terminal pair and rebuilds on update.
	SaveStaticTree SaveCalculation = iota
	// SaveStaticLCATree answers queries by LCA in a weight tree rebuilt on update.
	SaveStaticLCATree
	// SaveDynamicLCATree updates the weight tree incrementally.
	SaveDynamicLCATree
	// SaveHybrid uses SaveStaticTree for generation and SaveDynamicLCATree
	// for contraction.
	SaveHybrid
)

// Pass selects the contraction policy over a triple pool.
type Pass int

const (
	// PassOne sorts the pool once by descending gain and sweeps it once.
	PassOne Pass = iota
	// PassMulti re-scans the whole pool for the best triple every round.
	PassMulti
)

var (
	winNames        = []string{"absolute", "relative"}
	generationNames = []string{"exhaustive", "voronoi", "onDemand"}
	reducingNames   = []string{"on", "off"}
	saveNames       = []string{"staticTree", "staticLCATree", "dynamicLCATree", "hybrid"}
	passNames       = []string{"onePass", "multiPass"}
)

func enumName(kind string, names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}

	return names[v]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %s %q (want one of %v)", ErrBadOption, kind, s, names)
}

func decodeEnum(kind string, names []string, node *yaml.Node) (int, error) {
	var s string
	if err := node.Decode(&s); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadOption, kind, err)
	}

	return parseEnum(kind, names, s)
}

func (w WinCalculation) String() string {
	return enumName("WinCalculation", winNames, int(w))
}

func (t TripleGeneration) String() string {
	return enumName("TripleGeneration", generationNames, int(t))
}

func (r TripleReducing) String() string {
	return enumName("TripleReducing", reducingNames, int(r))
}

func (s SaveCalculation) String() string {
	return enumName("SaveCalculation", saveNames, int(s))
}

func (p Pass) String() string {
	return enumName("Pass", passNames, int(p))
}

// MarshalYAML implements yaml.Marshaler.
func (w WinCalculation) MarshalYAML() (interface{}, error) { return w.String(), nil }

// MarshalYAML implements yaml.Marshaler.
func (t TripleGeneration) MarshalYAML() (interface{}, error) { return t.String(), nil }

// MarshalYAML implements yaml.Marshaler.
func (r TripleReducing) MarshalYAML() (interface{}, error) { return r.String(), nil }

// MarshalYAML implements yaml.Marshaler.
func (s SaveCalculation) MarshalYAML() (interface{}, error) { return s.String(), nil }

// MarshalYAML implements yaml.Marshaler.
func (p Pass) MarshalYAML() (interface{}, error) { return p.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *WinCalculation) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum("win_calculation", winNames, node)
	*w = WinCalculation(v)

	return err
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TripleGeneration) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum("triple_generation", generationNames, node)
	*t = TripleGeneration(v)

	return err
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *TripleReducing) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum("triple_reducing", reducingNames, node)
	*r = TripleReducing(v)

	return err
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SaveCalculation) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum("save_calculation", saveNames, node)
	*s = SaveCalculation(v)

	return err
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pass) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum("pass", passNames, node)
	*p = Pass(v)

	return err
}

// Default option values.
const (
	DefaultMaxComponentSize = 3
	DefaultTimeLimit        = time.Hour
)

// Options configures both solver families. Fields that do not apply to a
// solver are ignored by it.
//
//	MaxComponentSize – RZLoss: maximum number of terminals per full component (≥ 3).
//	WinCalculation   – Zelikovsky: triple scoring.
//	TripleGeneration – Zelikovsky: candidate generation strategy.
//	TripleReducing   – Zelikovsky: eager pruning of unprofitable triples.
//	SaveCalculation  – Zelikovsky: save-edge structure.
//	Pass             – Zelikovsky: contraction policy.
//	TimeLimit        – soft wall-clock budget per call (> 0).
//	Logger           – structured logger; nil discards all records.
type Options struct {
	MaxComponentSize int              `yaml:"max_component_size"`
	WinCalculation   WinCalculation   `yaml:"win_calculation"`
	TripleGeneration TripleGeneration `yaml:"triple_generation"`
	TripleReducing   TripleReducing   `yaml:"triple_reducing"`
	SaveCalculation  SaveCalculation  `yaml:"save_calculation"`
	Pass             Pass             `yaml:"pass"`
	TimeLimit        time.Duration    `yaml:"time_limit"`
	Logger           *slog.Logger     `yaml:"-"`
}

// Option mutates Options before a solver is constructed.
type Option func(*Options)

// DefaultOptions returns k = 3, absolute win, voronoi generation, reducing
// on, hybrid save structure, multiPass and a one hour budget.
func DefaultOptions() Options {
	return Options{
		MaxComponentSize: DefaultMaxComponentSize,
		WinCalculation:   WinAbsolute,
		TripleGeneration: GenerationVoronoi,
		TripleReducing:   ReducingOn,
		SaveCalculation:  SaveHybrid,
		Pass:             PassMulti,
		TimeLimit:        DefaultTimeLimit,
	}
}

// WithMaxComponentSize sets k for RZLoss. Panics if k < 3.
func WithMaxComponentSize(k int) Option {
	if k < 3 {
		panic(fmt.Sprintf("steiner: WithMaxComponentSize(%d): k must be ≥ 3", k))
	}

	return func(o *Options) { o.MaxComponentSize = k }
}

// WithWinCalculation sets the triple scoring.
func WithWinCalculation(w WinCalculation) Option {
	return func(o *Options) { o.WinCalculation = w }
}

// WithTripleGeneration sets the triple generation strategy.
func WithTripleGeneration(t TripleGeneration) Option {
	return func(o *Options) { o.TripleGeneration = t }
}

// WithTripleReducing enables or disables eager triple pruning.
func WithTripleReducing(r TripleReducing) Option {
	return func(o *Options) { o.TripleReducing = r }
}

// WithSaveCalculation sets the save-edge structure.
func WithSaveCalculation(s SaveCalculation) Option {
	return func(o *Options) { o.SaveCalculation = s }
}

// WithPass sets the contraction policy.
func WithPass(p Pass) Option {
	return func(o *Options) { o.Pass = p }
}

// WithTimeLimit sets the soft time budget. Panics if d ≤ 0.
func WithTimeLimit(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("steiner: WithTimeLimit(%s): must be positive", d))
	}

	return func(o *Options) { o.TimeLimit = d }
}

// WithLogger sets the logger; nil restores the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOptions replaces every field with the values of src, e.g. the result
// of ParseOptions. The logger is kept when src.Logger is nil.
func WithOptions(src Options) Option {
	return func(o *Options) {
		l := o.Logger
		*o = src
		if o.Logger == nil {
			o.Logger = l
		}
	}
}

// ParseOptions decodes a YAML document over DefaultOptions and validates
// the result. Unknown keys are rejected.
//
//	max_component_size: 4
//	triple_generation: exhaustive
//	time_limit: 30s
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := decodeStrict(data, &opts); err != nil {
		return Options{}, err
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// Validate reports ErrBadOption for out-of-range values.
func (o Options) Validate() error { return o.validate() }

func (o Options) validate() error {
	switch {
	case o.MaxComponentSize < 3:
		return fmt.Errorf("%w: max_component_size=%d must be ≥ 3", ErrBadOption, o.MaxComponentSize)
	case o.WinCalculation < WinAbsolute || o.WinCalculation > WinRelative:
		return fmt.Errorf("%w: win_calculation=%s", ErrBadOption, o.WinCalculation)
	case o.TripleGeneration < GenerationExhaustive || o.TripleGeneration > GenerationOnDemand:
		return fmt.Errorf("%w: triple_generation=%s", ErrBadOption, o.TripleGeneration)
	case o.TripleReducing < ReducingOn || o.TripleReducing > ReducingOff:
		return fmt.Errorf("%w: triple_reducing=%s", ErrBadOption, o.TripleReducing)
	case o.SaveCalculation < SaveStaticTree || o.SaveCalculation > SaveHybrid:
		return fmt.Errorf("%w: save_calculation=%s", ErrBadOption, o.SaveCalculation)
	case o.Pass < PassOne || o.Pass > PassMulti:
		return fmt.Errorf("%w: pass=%s", ErrBadOption, o.Pass)
	case o.TimeLimit <= 0:
		return fmt.Errorf("%w: time_limit=%s must be positive", ErrBadOption, o.TimeLimit)
	}

	return nil
}

func decodeStrict(data []byte, out *Options) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(out)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, ErrBadOption):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrBadOption, err)
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
