// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package roster maps stable human-readable names to principals.
//
// Operators label well-known identities (ledgers, governance services,
// platform operators) in a YAML roster file:
//
//	principals:
//	  ledger: em77e-bvlzu-aq
//	  governance: 2vxsx-fae
//
// A roster is loaded from a single file specified by:
//   - TESSERA_ROSTER environment variable, or
//   - --roster flag passed to the command
//
// There are no search paths and no automatic discovery. This ensures
// deterministic, auditable name resolution with no hidden overrides.
// A loaded roster stands alone; it does not inherit the [Builtin]
// names.
//
// Within one roster the mapping is one-to-one: a name resolves to
// exactly one principal and a principal carries at most one name, so
// reverse lookup ([Roster.NameOf]) is unambiguous.
package roster

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tessera-foundation/tessera/lib/principal"
)

// namePattern constrains roster names to DNS-label-like strings. Names
// appear as YAML keys and in CLI output, so no uppercase, no spaces,
// no leading punctuation.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Roster is a bidirectional registry of named principals. The zero
// value is empty and ready to use.
type Roster struct {
	byName      map[string]principal.Principal
	byPrincipal map[string]string // keyed by canonical text form
}

// rosterFile is the on-disk YAML shape.
type rosterFile struct {
	Principals map[string]string `yaml:"principals"`
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{
		byName:      make(map[string]principal.Principal),
		byPrincipal: make(map[string]string),
	}
}

// Builtin returns the roster of identities every deployment knows
// without configuration: the management canister and the anonymous
// caller.
func Builtin() *Roster {
	r := New()
	// Both names satisfy namePattern and the two principals are
	// distinct, so these cannot fail.
	r.Add("management", principal.ManagementCanister())
	r.Add("anonymous", principal.Anonymous())
	return r
}

// Load loads the roster named by the TESSERA_ROSTER environment
// variable.
//
// This is the only way to load a roster without an explicit path.
// There are no fallbacks - if TESSERA_ROSTER is not set, this fails.
func Load() (*Roster, error) {
	path := os.Getenv("TESSERA_ROSTER")
	if path == "" {
		return nil, fmt.Errorf("TESSERA_ROSTER environment variable not set; " +
			"set it to the path of your roster.yaml file, or use --roster flag")
	}
	return LoadFile(path)
}

// LoadFile loads a roster from a specific file path.
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return r, nil
}

// Select resolves the roster a command should use: the explicit path
// when non-empty, otherwise TESSERA_ROSTER when set, otherwise
// [Builtin]. An explicit source that fails to load is an error; Select
// never falls through past a source the operator named.
func Select(path string) (*Roster, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv("TESSERA_ROSTER") != "" {
		return Load()
	}
	return Builtin(), nil
}

// Parse parses and validates roster YAML. All validation problems are
// reported together, joined with [errors.Join]: malformed names,
// principal texts that fail [principal.FromText], and distinct names
// mapping to the same principal.
func Parse(data []byte) (*Roster, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	// Map iteration order is random; sort so joined errors come out
	// stable run to run.
	names := make([]string, 0, len(file.Principals))
	for name := range file.Principals {
		names = append(names, name)
	}
	slices.Sort(names)

	r := New()
	var errs []error
	for _, name := range names {
		text := file.Principals[name]
		p, err := principal.FromText(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("principal %q for name %q: %w", text, name, err))
			continue
		}
		if err := r.Add(name, p); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// Add registers a name for a principal. Re-adding an identical pair is
// a no-op. It is an error if the name is malformed, if the name
// already maps to a different principal, or if the principal already
// carries a different name.
func (r *Roster) Add(name string, p principal.Principal) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid roster name %q: must match %s", name, namePattern)
	}

	if r.byName == nil {
		r.byName = make(map[string]principal.Principal)
		r.byPrincipal = make(map[string]string)
	}

	text := p.Text()
	if existing, ok := r.byName[name]; ok {
		if existing.Equal(p) {
			return nil
		}
		return fmt.Errorf("name %q already maps to %v", name, existing)
	}
	if existing, ok := r.byPrincipal[text]; ok {
		return fmt.Errorf("principal %v already named %q", p, existing)
	}

	r.byName[name] = p
	r.byPrincipal[text] = name
	return nil
}

// Merge adds every entry of other into r. The merge is atomic: on any
// collision r is left unchanged and all collisions are reported
// together.
func (r *Roster) Merge(other *Roster) error {
	merged := r.clone()
	var errs []error
	for _, name := range other.Names() {
		p, _ := other.Resolve(name)
		if err := merged.Add(name, p); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	r.byName = merged.byName
	r.byPrincipal = merged.byPrincipal
	return nil
}

// Resolve returns the principal registered under name.
func (r *Roster) Resolve(name string) (principal.Principal, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// NameOf returns the name registered for p.
func (r *Roster) NameOf(p principal.Principal) (string, bool) {
	name, ok := r.byPrincipal[p.Text()]
	return name, ok
}

// Names returns all registered names, sorted.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.byName)
}

func (r *Roster) clone() *Roster {
	c := New()
	for name, p := range r.byName {
		c.byName[name] = p
	}
	for text, name := range r.byPrincipal {
		c.byPrincipal[text] = name
	}
	return c
}
