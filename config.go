package typeinduct

import (
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/pablor21/typeinduct/copy"
	"github.com/pablor21/typeinduct/introspect"
	"github.com/pablor21/typeinduct/logger"
)

// Options configures the engine at startup. Unlike the teacher's ScanMode
// bitmask, the engine has no scan-depth axis to bound — every derivation
// always walks the whole type graph reachable from T — so Options is a
// plain struct of independent knobs instead of a bitfield.
type Options struct {
	Logger   logger.Logger    `json:"-" yaml:"-"`
	LogLevel logger.LogLevel  `json:"log_level" yaml:"log_level"`
	// Strict, if true, makes a failed constructor-binding synthesis panic
	// instead of returning an error — for callers that would rather fail
	// fast at startup than propagate ErrNoBindableConstructor through every
	// call site (mirrors the teacher's ScanWithContext panicking on missing
	// configuration).
	Strict bool `json:"strict" yaml:"strict"`

	// PureInterfaces extends the curated observation-only interface set the
	// mutability classifier consults (introspect.RegisterInterface).
	PureInterfaces []reflect.Type `json:"-" yaml:"-"`
	// PureTypes marks additional types as unconditionally immutable
	// (introspect.RegisterPure).
	PureTypes []reflect.Type `json:"-" yaml:"-"`
	// PureMethods marks individual methods of a type as pure
	// (introspect.RegisterPureMethod) without marking the whole type
	// immutable.
	PureMethods map[reflect.Type][]string `json:"-" yaml:"-"`
	// ConstructorFinders let a caller supply constructors for types it does
	// not own, discovered however the caller likes, applied at startup.
	ConstructorFinders []func(reflect.Type) []introspect.Constructor `json:"-" yaml:"-"`
}

// NewDefaultOptions returns the engine's default configuration.
func NewDefaultOptions() *Options {
	return &Options{
		Logger:   logger.NewDefaultLogger(),
		LogLevel: logger.LogLevelInfo,
	}
}

// LoadOptions reads Options from a YAML file, layered over the defaults for
// any field the file omits.
func LoadOptions(path string) (*Options, error) {
	opts := NewDefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger()
	}
	return opts, nil
}

// Apply installs Options' extension points into the shared introspection
// registries and configures the process-wide logger. Intended to run once
// at startup (spec §5 "clients are expected to install overrides during
// startup").
func (o *Options) Apply() {
	logger.SetupLogger(o.LogLevel)
	for _, iface := range o.PureInterfaces {
		introspect.RegisterInterface(iface)
	}
	for _, t := range o.PureTypes {
		introspect.RegisterPure(t)
	}
	for t, methods := range o.PureMethods {
		for _, m := range methods {
			introspect.RegisterPureMethod(t, m)
		}
	}
	for _, find := range o.ConstructorFinders {
		introspect.RegisterConstructorFinder(find)
	}
	copy.Strict = o.Strict
}
