package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

// Action is a named, rebindable operation.
type Action string

const (
	actionQuit      Action = "quit"
	actionNextField Action = "next_field"
	actionPrevField Action = "prev_field"
	actionNext      Action = "next"
	actionBack      Action = "back"
	actionSubmit    Action = "submit"
	actionReset     Action = "reset"
)

// Key scopes. The form scope is deliberately sparse: any key it does not
// claim falls through to the focused text input.
const (
	scopeGlobal  = "global"
	scopeForm    = "form"
	scopeReview  = "review"
	scopeSuccess = "success"
)

// Binding ties an action to its keys within one scope.
type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scope  string
}

// KeyRegistry resolves key presses to actions per scope, with a global
// fallback, and feeds the footer help line.
type KeyRegistry struct {
	byScope map[string][]*Binding
	index   map[string]map[string]*Binding
}

// defaultKeys is the authoritative action → keys table. The
// keybindings.toml override file is validated against its action names.
func defaultKeys() map[Action][]string {
	return map[Action][]string{
		actionQuit:      {"ctrl+c"},
		actionNextField: {"tab", "down"},
		actionPrevField: {"shift+tab", "up"},
		actionNext:      {"enter"},
		actionBack:      {"esc"},
		actionSubmit:    {"enter"},
		actionReset:     {"enter", "r"},
	}
}

// NewKeyRegistry builds the registry from an action → keys table,
// normally defaultKeys() with user overrides applied.
func NewKeyRegistry(keys map[Action][]string) *KeyRegistry {
	r := &KeyRegistry{
		byScope: make(map[string][]*Binding),
		index:   make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, help string) {
		r.register(Binding{Action: action, Keys: keys[action], Help: help, Scope: scope})
	}

	reg(scopeGlobal, actionQuit, "quit")

	reg(scopeForm, actionNextField, "next field")
	reg(scopeForm, actionPrevField, "prev field")
	reg(scopeForm, actionNext, "continue")
	reg(scopeForm, actionBack, "back")

	reg(scopeReview, actionSubmit, "submit")
	reg(scopeReview, actionBack, "back")

	reg(scopeSuccess, actionReset, "start over")

	return r
}

func (r *KeyRegistry) register(b Binding) {
	norm := normalizeKeyList(b.Keys)
	if b.Scope == "" || len(norm) == 0 {
		return
	}
	if r.index[b.Scope] == nil {
		r.index[b.Scope] = make(map[string]*Binding)
	}
	b.Keys = norm
	r.byScope[b.Scope] = append(r.byScope[b.Scope], &b)
	for _, k := range b.Keys {
		if _, taken := r.index[b.Scope][k]; !taken {
			r.index[b.Scope][k] = &b
		}
	}
}

// Lookup resolves a key within a scope, falling back to the global scope.
// Returns nil when the key is unbound (form input falls through here).
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.index[scope][keyName]; b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.index[scopeGlobal][keyName]
	}
	return nil
}

// HelpBindings renders a scope's bindings (plus the global ones) for the
// footer help line.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := append([]*Binding{}, r.byScope[scope]...)
	if scope != scopeGlobal {
		items = append(items, r.byScope[scopeGlobal]...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// ---------------------------------------------------------------------------
// keybindings.toml
// ---------------------------------------------------------------------------

type keybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeybindings builds the registry from keybindings.toml in dir,
// creating the file with defaults when missing. A file naming an unknown
// action or binding no keys is rewritten with the defaults rather than
// rejected, so a bad edit never locks the user out of the form.
func LoadKeybindings(dir string) (*KeyRegistry, error) {
	defaults := defaultKeys()
	if strings.TrimSpace(dir) == "" {
		return NewKeyRegistry(defaults), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	path := filepath.Join(dir, "keybindings.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(renderKeybindingsTOML(defaults)), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		return NewKeyRegistry(defaults), nil
	}

	var file keybindingsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	merged, valid := mergeKeybindings(defaults, file.Bindings)
	if !valid {
		if err := os.WriteFile(path, []byte(renderKeybindingsTOML(defaults)), 0o644); err != nil {
			return nil, fmt.Errorf("reset %s: %w", path, err)
		}
		return NewKeyRegistry(defaults), nil
	}
	return NewKeyRegistry(merged), nil
}

// mergeKeybindings overlays user bindings onto the defaults. valid=false
// means the user file referenced an unknown action or emptied a binding.
func mergeKeybindings(defaults map[Action][]string, user map[string][]string) (map[Action][]string, bool) {
	merged := make(map[Action][]string, len(defaults))
	for a, keys := range defaults {
		merged[a] = append([]string(nil), keys...)
	}
	for name, keys := range user {
		action := Action(name)
		if _, known := merged[action]; !known {
			return nil, false
		}
		norm := normalizeKeyList(keys)
		if len(norm) == 0 {
			return nil, false
		}
		merged[action] = norm
	}
	return merged, true
}

func renderKeybindingsTOML(bindings map[Action][]string) string {
	actions := make([]string, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, string(a))
	}
	sort.Strings(actions)

	var b bytes.Buffer
	b.WriteString("version = 1\n\n[bindings]\n")
	for _, a := range actions {
		fmt.Fprintf(&b, "%s = %s\n", a, formatTOMLArray(bindings[Action(a)]))
	}
	return b.String()
}

func formatTOMLArray(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}
