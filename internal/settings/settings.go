// Package settings holds the user-settable parameters of a command shell.
// Values keep their Go type; new values arrive as text and are converted
// to the type of the current value.
package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/msto63/cmdkit/foundation/core/config"
	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
	kitlog "github.com/msto63/cmdkit/foundation/core/log"
	"github.com/msto63/cmdkit/foundation/utils/castx"
	"github.com/msto63/cmdkit/foundation/utils/execx"
	"github.com/msto63/cmdkit/foundation/utils/mapx"
	"github.com/msto63/cmdkit/foundation/utils/slicex"
	"github.com/msto63/cmdkit/foundation/utils/stringx"
)

// Param is a named, described setting
type Param struct {
	Name        string
	Value       any
	Description string
}

// Change records the outcome of Set
type Change struct {
	Name string
	Old  any
	New  any
}

// Changed reports whether the value differs after Set
func (c Change) Changed() bool {
	return fmt.Sprint(c.Old) != fmt.Sprint(c.New)
}

// Settings is a registry of parameters
type Settings struct {
	mu     sync.RWMutex
	params map[string]*Param
	caster *castx.Caster
	logger *kitlog.Logger
}

// Option configures Settings
type Option func(*Settings)

// WithCaster sets the caster used by Set
func WithCaster(caster *castx.Caster) Option {
	return func(s *Settings) {
		s.caster = caster
	}
}

// WithLogger sets the logger
func WithLogger(logger *kitlog.Logger) Option {
	return func(s *Settings) {
		s.logger = logger
	}
}

// New creates an empty registry
func New(opts ...Option) *Settings {
	s := &Settings{
		params: make(map[string]*Param),
		caster: &castx.Caster{},
		logger: kitlog.GetDefault(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = kitlog.GetDefault()
	}
	if s.caster == nil {
		s.caster = &castx.Caster{}
	}
	if s.caster.Logger == nil {
		s.caster.Logger = s.logger
	}
	return s
}

// Defaults creates a registry with the standard shell parameters
func Defaults(opts ...Option) *Settings {
	s := New(opts...)
	editor, _ := execx.FindEditor()

	for _, p := range []Param{
		{"colors", "Terminal", "Allow colorized output (valid values: Terminal, Always, Never)"},
		{"continuation_prompt", "> ", "On 2nd+ line of input"},
		{"debug", false, "Show full error stack on error"},
		{"echo", false, "Echo command issued into output"},
		{"editor", editor, "Program used by 'edit'"},
		{"feedback_to_output", false, "Include nonessentials in '|', '>' results"},
		{"max_completion_items", 50, "Maximum number of CompletionItems to display during tab completion"},
		{"quiet", false, "Don't print nonessential feedback"},
		{"timing", false, "Report execution times"},
	} {
		// names are unique
		_ = s.Add(p.Name, p.Value, p.Description)
	}
	return s
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add registers a parameter. The value's type is fixed from then on.
func (s *Settings) Add(name string, value any, description string) error {
	key := normalize(name)
	if key == "" {
		return kiterrors.InputError(kiterrors.ModuleSettings, "add", name, "a parameter name")
	}
	if value == nil {
		return kiterrors.InputError(kiterrors.ModuleSettings, "add", value, "a typed default value")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.params[key]; exists {
		return kiterror.Newf("parameter already registered: %s", key).
			WithCode(kiterror.CodeDuplicate).
			WithOperation("settings.add").
			WithDetail("name", key)
	}
	s.params[key] = &Param{Name: key, Value: value, Description: description}
	return nil
}

// Get returns the current value of name
func (s *Settings) Get(name string) (any, bool) {
	p, ok := s.Lookup(name)
	return p.Value, ok
}

// Lookup returns a copy of the parameter
func (s *Settings) Lookup(name string) (Param, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.params[normalize(name)]
	if !ok {
		return Param{}, false
	}
	return *p, true
}

// Names returns the parameter names in alphabetical order
func (s *Settings) Names() []string {
	s.mu.RLock()
	names := mapx.Keys(s.params)
	s.mu.RUnlock()

	return slicex.AlphabeticalSort(names)
}

// Params returns copies of all parameters ordered by name
func (s *Settings) Params() []Param {
	names := s.Names()

	s.mu.RLock()
	defer s.mu.RUnlock()

	params := make([]Param, 0, len(names))
	for _, name := range names {
		if p, ok := s.params[name]; ok {
			params = append(params, *p)
		}
	}
	return params
}

// Set converts raw to the type of the current value and stores it.
// Surrounding quotes are removed first. If the conversion fails the caster
// prints a diagnostic and the value stays unchanged; this is not an error.
func (s *Settings) Set(name, raw string) (Change, error) {
	key := normalize(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.params[key]
	if !ok {
		return Change{}, kiterrors.NotFoundError(kiterrors.ModuleSettings, "set", "parameter", key)
	}

	change := Change{Name: key, Old: p.Value}
	p.Value = s.caster.Cast(p.Value, stringx.StripQuotes(raw))
	change.New = p.Value

	s.logger.Debug("parameter set", kitlog.Fields{
		"module":  kiterrors.ModuleSettings,
		"name":    key,
		"changed": change.Changed(),
	})
	return change, nil
}

// Apply sets every registered parameter that cfg defines, including
// environment overrides. Keys unknown to the registry are ignored.
func (s *Settings) Apply(cfg *config.Config) ([]Change, error) {
	if cfg == nil {
		return nil, kiterrors.InputError(kiterrors.ModuleSettings, "apply", nil, "a configuration")
	}

	for _, key := range cfg.Keys() {
		if _, ok := s.Lookup(key); !ok {
			s.logger.Debug("config key is not a setting", kitlog.Fields{
				"module": kiterrors.ModuleSettings,
				"key":    key,
			})
		}
	}

	var changes []Change
	for _, name := range s.Names() {
		raw, ok := cfg.Raw(name)
		if !ok {
			continue
		}
		change, err := s.Set(name, raw)
		if err != nil {
			return changes, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// LoadFile applies a TOML or YAML file
func (s *Settings) LoadFile(path string) ([]Change, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return s.Apply(cfg)
}
