package terminfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Database is a loaded compiled terminfo entry together with the
// lookups described by the capability façade. It wraps a CapabilitySet;
// most callers only ever need the package-level Decode plus this type's
// constructors.
type Database struct {
	entry *CapabilitySet
}

// Name is the terminal's primary (canonical) name.
func (d *Database) Name() string { return d.entry.Name }

// Aliases lists the terminal's other recognized names.
func (d *Database) Aliases() []string { return d.entry.Aliases }

// Description is the terminal's free-text description field.
func (d *Database) Description() string { return d.entry.Description }

// Bool reports whether a boolean capability is present.
func (d *Database) Bool(c BoolCapability) bool { return d.entry.Bool(c) }

// Number returns a number capability's value.
func (d *Database) Number(c NumberCapability) (int32, bool) { return d.entry.Number(c) }

// String returns a string capability's raw (unexpanded) bytes.
func (d *Database) String(c StringCapability) ([]byte, bool) { return d.entry.String(c) }

// Raw looks up a capability by short or long name.
func (d *Database) Raw(name string) (Value, bool) { return d.entry.Raw(name) }

// Expand looks up a string capability and expands it against parameters
// and context in one step.
func (d *Database) Expand(c StringCapability, parameters []Parameter, context *Context) ([]byte, error) {
	s, ok := d.entry.String(c)
	if !ok {
		return nil, fmt.Errorf("terminfo: capability %q not present", string(c))
	}
	return Expand(s, parameters, context)
}

// FromBuffer decodes a compiled terminfo entry already in memory.
func FromBuffer(buf []byte) (*Database, error) {
	cs, err := Decode(buf)
	if err != nil {
		return nil, err
	}
	return &Database{entry: cs}, nil
}

// FromPath loads and decodes a compiled terminfo entry from a file.
func FromPath(path string) (*Database, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	db, err := FromBuffer(buf)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return db, nil
}

// NotFoundError reports that no compiled terminfo entry could be found
// for a given terminal name anywhere in the search path.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("terminfo: no compiled entry found for %q", e.Name)
}

// LoadError reports that a compiled entry at Path could not be read or
// parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("terminfo: failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrNoTerm is returned by FromEnv when $TERM is unset or empty.
var ErrNoTerm = errors.New("terminfo: TERM is not set")

// FromName searches the conventional terminfo directory layout for a
// compiled entry matching name and decodes it. The search order is:
// $TERMINFO (or $HOME/.terminfo when $TERMINFO is unset), then each
// directory in $TERMINFO_DIRS, then ($PREFIX)/{etc,lib,share}/terminfo
// for non-FHS installs, then the well-known system roots. Within each
// root both the standard first-letter subdirectory (e.g. "x/xterm") and
// the legacy hex-subdirectory layout (e.g. "78/xterm") are tried.
func FromName(name string) (*Database, error) {
	if name == "" {
		return nil, &NotFoundError{Name: name}
	}
	first := name[0]

	for _, root := range searchRoots() {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		standard := filepath.Join(root, string(first), name)
		if _, err := os.Stat(standard); err == nil {
			return FromPath(standard)
		}

		legacy := filepath.Join(root, fmt.Sprintf("%x", first), name)
		if _, err := os.Stat(legacy); err == nil {
			return FromPath(legacy)
		}
	}

	return nil, &NotFoundError{Name: name}
}

// FromEnv loads the compiled entry named by $TERM.
func FromEnv() (*Database, error) {
	name := os.Getenv("TERM")
	if name == "" {
		return nil, ErrNoTerm
	}
	return FromName(name)
}

// searchRoots builds the ordered list of directories FromName checks,
// per terminfo(5)'s "Fetching Compiled Descriptions" section.
func searchRoots() []string {
	var roots []string

	if dir := os.Getenv("TERMINFO"); dir != "" {
		roots = append(roots, dir)
	} else if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".terminfo"))
	}

	if dirs := os.Getenv("TERMINFO_DIRS"); dirs != "" {
		roots = append(roots, strings.Split(dirs, ":")...)
	}

	if prefix := os.Getenv("PREFIX"); prefix != "" {
		roots = append(roots,
			filepath.Join(prefix, "etc", "terminfo"),
			filepath.Join(prefix, "lib", "terminfo"),
			filepath.Join(prefix, "share", "terminfo"),
		)
	}

	roots = append(roots,
		"/etc/terminfo",
		"/lib/terminfo",
		"/usr/share/terminfo",
		"/usr/local/share/terminfo",
		"/usr/local/share/site-terminfo",
		"/boot/system/data/terminfo",
	)

	return roots
}

// Builder constructs a CapabilitySet programmatically, without a
// compiled binary entry. It is chiefly useful for building fixtures in
// tests.
type Builder struct {
	name        string
	aliases     []string
	description string
	entries     map[string]Value
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]Value)}
}

// Name sets the terminal's primary name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Aliases sets the terminal's other recognized names.
func (b *Builder) Aliases(aliases ...string) *Builder {
	b.aliases = aliases
	return b
}

// Description sets the terminal's free-text description.
func (b *Builder) Description(description string) *Builder {
	b.description = description
	return b
}

// SetBool sets a boolean capability to true, first write wins.
func (b *Builder) SetBool(c BoolCapability) *Builder {
	if _, exists := b.entries[string(c)]; !exists {
		b.entries[string(c)] = boolValue()
	}
	return b
}

// SetNumber sets a number capability, first write wins.
func (b *Builder) SetNumber(c NumberCapability, n int32) *Builder {
	if _, exists := b.entries[string(c)]; !exists {
		b.entries[string(c)] = numberValue(n)
	}
	return b
}

// SetString sets a string capability, first write wins.
func (b *Builder) SetString(c StringCapability, s []byte) *Builder {
	if _, exists := b.entries[string(c)]; !exists {
		b.entries[string(c)] = stringValue(s)
	}
	return b
}

// SetRaw sets a capability by short or long name, first write wins.
func (b *Builder) SetRaw(name string, v Value) *Builder {
	name = ResolveAlias(name)
	if _, exists := b.entries[name]; !exists {
		b.entries[name] = v
	}
	return b
}

// Build assembles the CapabilitySet. It fails if no name was set.
func (b *Builder) Build() (*CapabilitySet, error) {
	if b.name == "" {
		return nil, errors.New("terminfo: builder has no terminal name")
	}
	return &CapabilitySet{
		Name:        b.name,
		Aliases:     b.aliases,
		Description: b.description,
		entries:     b.entries,
	}, nil
}
