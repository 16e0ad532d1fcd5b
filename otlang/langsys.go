package otlang

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/npillmayer/scriptlang/internal/nameindex"
	"github.com/npillmayer/scriptlang/ot"
)

// ErrFrozen is returned when registering with a builder whose registry has already
// been frozen.
var ErrFrozen = errors.New("otlang: registry is frozen")

// InvalidTagError reports a language system tag which is not a valid OpenType tag.
type InvalidTagError struct {
	Name string
	Tag  string
}

// Error implements the error interface.
func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid language system tag %q for %q", e.Tag, e.Name)
}

// LangSys is an OpenType language system, e.g., 'ENG ' for English.
type LangSys struct {
	Name     string // human readable name
	Tag      ot.Tag // OpenType language system tag, space-padded
	isoCodes []string
}

// ISOCodes returns the ISO 639 identifiers associated with the language system,
// as given in the OpenType language tag registry. An undocumented mapping
// results in a single empty identifier.
func (ls *LangSys) ISOCodes() []string {
	codes := make([]string, len(ls.isoCodes))
	copy(codes, ls.isoCodes)
	return codes
}

func (ls *LangSys) String() string {
	return ls.Name
}

// Builder assembles a language system registry. It is meant to be used from
// a single goroutine, once, before the registry is published.
type Builder struct {
	langs  []*LangSys
	byTag  map[ot.Tag]*LangSys // nil until the first registration
	frozen bool
}

// NewBuilder creates an empty language system registry builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register enters a language system. tag is padded to 4 characters with spaces,
// isoCodes is a comma separated list of ISO 639 identifiers and is split, but not
// otherwise normalized.
//
// If a language system with the same (padded) tag is already registered, the call
// has no effect and the existing language system is returned.
func (b *Builder) Register(name, tag, isoCodes string) (*LangSys, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	t, ok := ot.ParseTag(tag)
	if !ok || tag == "" {
		tracer().Errorf("language system %q has invalid tag %q", name, tag)
		return nil, &InvalidTagError{Name: name, Tag: tag}
	}
	if b.byTag == nil {
		b.byTag = make(map[ot.Tag]*LangSys)
	}
	if ls, ok := b.byTag[t]; ok {
		tracer().Debugf("language system tag '%s' for %q ignored, already registered for %q",
			t, name, ls.Name)
		return ls, nil
	}
	ls := &LangSys{
		Name:     name,
		Tag:      t,
		isoCodes: strings.Split(isoCodes, ","),
	}
	b.byTag[t] = ls
	b.langs = append(b.langs, ls)
	return ls, nil
}

// Freeze completes construction and returns an immutable registry. Further calls
// to Register will fail with ErrFrozen.
func (b *Builder) Freeze() *Registry {
	b.frozen = true
	reg := &Registry{
		langs: b.langs,
		byTag: b.byTag,
		names: nameindex.New(),
	}
	for i, ls := range reg.langs {
		reg.names.Add(ls.Name, i)
	}
	tracer().Debugf("language system registry frozen: %d entries", len(reg.langs))
	return reg
}

// Registry is an immutable collection of language systems. All methods are safe
// for concurrent use.
type Registry struct {
	langs []*LangSys
	byTag map[ot.Tag]*LangSys
	names *nameindex.Index
	iso   isoIndex
}

// Lookup finds a language system by tag. Tags shorter than 4 characters are
// padded with spaces, i.e. "ABA" and "ABA " will find the same language system.
func (reg *Registry) Lookup(tag string) (*LangSys, bool) {
	if reg == nil || reg.byTag == nil {
		return nil, false
	}
	t, ok := ot.ParseTag(tag)
	if !ok {
		return nil, false
	}
	return reg.LookupTag(t)
}

// LookupTag finds a language system by tag.
func (reg *Registry) LookupTag(tag ot.Tag) (*LangSys, bool) {
	if reg == nil || reg.byTag == nil {
		return nil, false
	}
	ls, ok := reg.byTag[tag]
	return ls, ok
}

// All iterates over all language systems in registration order.
func (reg *Registry) All() iter.Seq[*LangSys] {
	return func(yield func(*LangSys) bool) {
		if reg == nil {
			return
		}
		for _, ls := range reg.langs {
			if !yield(ls) {
				return
			}
		}
	}
}

// Len returns the number of registered language systems.
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.langs)
}

// WithPrefix returns all language systems whose name starts with prefix, ignoring
// case, in registration order.
func (reg *Registry) WithPrefix(prefix string) []*LangSys {
	if reg == nil {
		return nil
	}
	var langs []*LangSys
	for _, pos := range reg.names.Prefix(prefix) {
		langs = append(langs, reg.langs[pos])
	}
	return langs
}

// --- Default registry ------------------------------------------------------

var (
	defaultRegistry         *Registry
	defaultRegistryCreation sync.Once
)

// Default returns the registry of all language systems of the OpenType language
// system tag registry. It is built on first use and is read-only afterwards.
func Default() *Registry {
	defaultRegistryCreation.Do(func() {
		defaultRegistry = MustBuild(registerLanguages)
	})
	return defaultRegistry
}

// MustBuild runs a registration function against a fresh builder and returns
// the frozen registry. It panics if registration fails.
func MustBuild(register func(*Builder) error) *Registry {
	b := NewBuilder()
	if err := register(b); err != nil {
		panic(err)
	}
	return b.Freeze()
}
