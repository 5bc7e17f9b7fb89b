package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/msto63/cmdkit/foundation/core/config"
	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kitlog "github.com/msto63/cmdkit/foundation/core/log"
	"github.com/msto63/cmdkit/foundation/utils/castx"
)

func newTestSettings(t *testing.T) (*Settings, *bytes.Buffer) {
	t.Helper()
	t.Setenv("EDITOR", "ed")
	var out bytes.Buffer
	return Defaults(WithCaster(castx.NewCaster(&out))), &out
}

func TestDefaults(t *testing.T) {
	s, _ := newTestSettings(t)

	want := []string{
		"colors", "continuation_prompt", "debug", "echo", "editor",
		"feedback_to_output", "max_completion_items", "quiet", "timing",
	}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v", got)
	}

	if v, _ := s.Get("editor"); v != "ed" {
		t.Errorf("editor = %v; want $EDITOR", v)
	}
	if v, _ := s.Get("max_completion_items"); v != 50 {
		t.Errorf("max_completion_items = %v", v)
	}
	if p, ok := s.Lookup("quiet"); !ok || p.Value != false || p.Description == "" {
		t.Errorf("Lookup(quiet) = %+v, %v", p, ok)
	}
	if len(s.Params()) != len(want) {
		t.Errorf("Params() returned %d entries", len(s.Params()))
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		raw     string
		want    any
		changed bool
		diag    bool
	}{
		{"bool from word", "quiet", "on", true, true, false},
		{"bool from int", "debug", "0", false, false, false},
		{"bool from quoted", "echo", `"yes"`, true, true, false},
		{"int", "max_completion_items", "100", 100, true, false},
		{"int from quoted", "max_completion_items", "'7'", 7, true, false},
		{"int rejected", "max_completion_items", "many", 50, false, true},
		{"bool rejected", "timing", "maybe", false, false, true},
		{"string strips quotes", "continuation_prompt", `"... "`, "... ", true, false},
		{"string keeps inner quotes", "editor", `"vim" -n`, `"vim" -n`, true, false},
		{"name is case-insensitive", " QUIET ", "y", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSettings(t)

			change, err := s.Set(tt.param, tt.raw)
			if err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if change.New != tt.want {
				t.Errorf("new value = %#v; want %#v", change.New, tt.want)
			}
			if got, _ := s.Get(tt.param); got != tt.want {
				t.Errorf("stored value = %#v; want %#v", got, tt.want)
			}
			if change.Changed() != tt.changed {
				t.Errorf("Changed() = %v; want %v", change.Changed(), tt.changed)
			}
			if (out.Len() > 0) != tt.diag {
				t.Errorf("diagnostic = %q", out.String())
			}
		})
	}
}

func TestSetUnknown(t *testing.T) {
	s, _ := newTestSettings(t)

	_, err := s.Set("nope", "1")
	if kiterror.GetCode(err) != kiterror.CodeNotFound {
		t.Errorf("code = %v", kiterror.GetCode(err))
	}
}

func TestAdd(t *testing.T) {
	s := New()

	if err := s.Add("Width", 80, "Output width"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	err := s.Add("width", 100, "again")
	if kiterror.GetCode(err) != kiterror.CodeDuplicate {
		t.Errorf("duplicate code = %v", kiterror.GetCode(err))
	}
	if err == nil || err.Error() != "parameter already registered: width" {
		t.Errorf("duplicate error = %v", err)
	}
	if err := s.Add(" ", 1, ""); kiterror.GetCode(err) != kiterror.CodeInvalidInput {
		t.Errorf("blank name code = %v", kiterror.GetCode(err))
	}
	if err := s.Add("nothing", nil, ""); err == nil {
		t.Error("nil value should be rejected")
	}
	if v, ok := s.Get("WIDTH"); !ok || v != 80 {
		t.Errorf("Get(WIDTH) = %v, %v", v, ok)
	}
}

func TestApply(t *testing.T) {
	s, out := newTestSettings(t)

	cfg, err := config.LoadFromString(`
quiet = true
max_completion_items = 25
editor = "nano"
unrelated = "ignored"
timing = "sometimes"
`, config.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	changes, err := s.Apply(cfg)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(changes) != 4 {
		t.Errorf("Apply() returned %d changes", len(changes))
	}

	for name, want := range map[string]any{"quiet": true, "max_completion_items": 25, "editor": "nano", "timing": false} {
		if got, _ := s.Get(name); got != want {
			t.Errorf("%s = %#v; want %#v", name, got, want)
		}
	}
	if out.String() != "Problem setting parameter (now false) to sometimes; incorrect type?\n" {
		t.Errorf("diagnostic = %q", out.String())
	}

	if _, err := s.Apply(nil); err == nil {
		t.Error("Apply(nil) should fail")
	}
}

func TestApplyLogsUnknownKeys(t *testing.T) {
	var logs bytes.Buffer
	logger := kitlog.NewWithConfig(kitlog.Config{
		Level:  kitlog.LevelDebug,
		Format: kitlog.FormatJSON,
		Output: &logs,
	})
	s := Defaults(WithLogger(logger), WithCaster(castx.NewCaster(&bytes.Buffer{})))

	cfg, err := config.LoadFromString("quiet = true\nunrelated = 1\n", config.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	out := logs.String()
	if !strings.Contains(out, `"message":"config key is not a setting"`) || !strings.Contains(out, `"key":"unrelated"`) {
		t.Errorf("unknown key not logged: %s", out)
	}
	if strings.Contains(out, `"key":"quiet"`) {
		t.Errorf("registered key logged as unknown: %s", out)
	}
}

func TestLoadFile(t *testing.T) {
	s, _ := newTestSettings(t)

	path := filepath.Join(t.TempDir(), "cmdkit.yaml")
	if err := os.WriteFile(path, []byte("debug: yes\nmax_completion_items: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if v, _ := s.Get("debug"); v != true {
		t.Errorf("debug = %v", v)
	}
	if v, _ := s.Get("max_completion_items"); v != 3 {
		t.Errorf("max_completion_items = %v", v)
	}

	if _, err := s.LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}
