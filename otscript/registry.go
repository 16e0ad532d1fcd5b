package otscript

import (
	"iter"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/scriptlang/internal/nameindex"
	"github.com/npillmayer/scriptlang/ot"
)

// sharedTags lists script tags which are legitimately owned by more than one
// script. Hiragana and Katakana are both shaped with script tag 'kana'.
// For tag lookup the first registrant wins; lookup by full name tells them apart.
// No other tag may be registered twice.
var sharedTags = map[ot.Tag]bool{
	ot.T("kana"): true,
}

// IsSharedTag reports whether tag may be owned by more than one script.
func IsSharedTag(tag ot.Tag) bool {
	return sharedTags[tag]
}

// rangeEntry is a slot of the Unicode range index.
type rangeEntry struct {
	ur     UnicodeRange
	script *Script
}

// Builder assembles a script registry. It is meant to be used from a single
// goroutine, once, before the registry is published.
type Builder struct {
	scripts []*Script          // registration order
	byTag   map[ot.Tag]*Script // first registrant per tag
	byName  map[string]*Script
	index   *treemap.Map // range start → rangeEntry, ascending
	frozen  bool
}

// NewBuilder creates an empty script registry builder.
func NewBuilder() *Builder {
	return &Builder{
		byTag:  make(map[ot.Tag]*Script),
		byName: make(map[string]*Script),
		index:  treemap.NewWithIntComparator(),
	}
}

// Register creates a script and enters it into the registry under construction.
//
// Registering a tag which is already taken returns a *DuplicateTagError, except for
// the shared tag 'kana': a second script with this tag is created and is reachable
// by full name, but tag lookup keeps returning the first registrant.
// Registering a full name twice returns a *DuplicateNameError. Tags must have
// between 1 and 4 characters.
//
// Each range is entered into the Unicode range index, unless a range with the same
// start is already present. In that case the range stays with the script, but the
// index slot remains with the earlier registration.
func (b *Builder) Register(fullName, tag string, ranges ...UnicodeRange) (*Script, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	t, ok := ot.ParseTag(tag)
	if !ok || tag == "" {
		tracer().Errorf("script %q has invalid tag %q", fullName, tag)
		return nil, &InvalidTagError{FullName: fullName, Tag: tag}
	}
	if owner, ok := b.byTag[t]; ok && !sharedTags[t] {
		tracer().Errorf("script tag '%s' for %q already owned by %q", t, fullName, owner.FullName)
		return nil, &DuplicateTagError{Tag: t, FullName: fullName, Owner: owner.FullName}
	}
	if _, ok := b.byName[fullName]; ok {
		tracer().Errorf("script name %q already registered", fullName)
		return nil, &DuplicateNameError{FullName: fullName, Tag: t}
	}
	sc := newScript(fullName, t, ranges)
	if _, ok := b.byTag[t]; !ok {
		b.byTag[t] = sc
	} else {
		tracer().Debugf("script %q shares tag '%s' with %q", fullName, t, b.byTag[t].FullName)
	}
	b.byName[fullName] = sc
	b.scripts = append(b.scripts, sc)
	for _, ur := range sc.ranges {
		b.indexRange(ur, sc)
	}
	return sc, nil
}

// indexRange enters a range into the range index. The first range at a given
// start wins; later ones are dropped from the index.
func (b *Builder) indexRange(ur UnicodeRange, sc *Script) {
	start := int(ur.Start)
	if prev, found := b.index.Get(start); found {
		tracer().Debugf("range %v of %q not indexed, start taken by %q",
			ur, sc.FullName, prev.(rangeEntry).script.FullName)
		return
	}
	b.index.Put(start, rangeEntry{ur: ur, script: sc})
}

// Freeze completes construction and returns an immutable registry. Further calls
// to Register will fail with ErrFrozen.
func (b *Builder) Freeze() *Registry {
	b.frozen = true
	reg := &Registry{
		scripts: b.scripts,
		byTag:   b.byTag,
		byName:  b.byName,
		index:   make([]rangeEntry, 0, b.index.Size()),
		names:   nameindex.New(),
	}
	it := b.index.Iterator()
	for it.Next() {
		reg.index = append(reg.index, it.Value().(rangeEntry))
	}
	for i, sc := range reg.scripts {
		reg.names.Add(sc.FullName, i)
	}
	tracer().Debugf("script registry frozen: %d scripts, %d indexed ranges",
		len(reg.scripts), len(reg.index))
	return reg
}

// Registry is an immutable collection of scripts. All methods are safe for
// concurrent use.
type Registry struct {
	scripts []*Script
	byTag   map[ot.Tag]*Script
	byName  map[string]*Script
	index   []rangeEntry // sorted by range start, ascending
	names   *nameindex.Index
}

// Lookup finds a script by tag. Tags shorter than 4 characters are padded with
// spaces, tags longer than 4 characters are never found.
// For tag 'kana', Hiragana is returned.
func (reg *Registry) Lookup(tag string) (*Script, bool) {
	t, ok := ot.ParseTag(tag)
	if !ok {
		return nil, false
	}
	return reg.LookupTag(t)
}

// LookupTag finds a script by tag.
func (reg *Registry) LookupTag(tag ot.Tag) (*Script, bool) {
	if reg == nil {
		return nil, false
	}
	sc, ok := reg.byTag[tag]
	return sc, ok
}

// LookupName finds a script by its full name, e.g. "Cyrillic". Names must match exactly.
func (reg *Registry) LookupName(name string) (*Script, bool) {
	if reg == nil {
		return nil, false
	}
	sc, ok := reg.byName[name]
	return sc, ok
}

// LookupRune finds the script owning code point r.
//
// The range index is scanned in ascending order of range start. As soon as an
// entry starts beyond r, no later entry can contain r and the scan stops.
// If ranges of different scripts overlap, the range with the lowest start wins,
// which is not necessarily the narrowest one.
func (reg *Registry) LookupRune(r rune) (*Script, bool) {
	if reg == nil {
		return nil, false
	}
	for _, entry := range reg.index {
		if entry.ur.Start > r {
			return nil, false
		}
		if entry.ur.Contains(r) {
			return entry.script, true
		}
	}
	return nil, false
}

// All iterates over all scripts in registration order. This includes
// scripts sharing a tag with an earlier script.
func (reg *Registry) All() iter.Seq[*Script] {
	return func(yield func(*Script) bool) {
		if reg == nil {
			return
		}
		for _, sc := range reg.scripts {
			if !yield(sc) {
				return
			}
		}
	}
}

// Len returns the number of registered scripts.
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.scripts)
}

// WithPrefix returns all scripts whose full name starts with prefix, ignoring case,
// in registration order.
func (reg *Registry) WithPrefix(prefix string) []*Script {
	if reg == nil {
		return nil
	}
	var scripts []*Script
	for _, pos := range reg.names.Prefix(prefix) {
		scripts = append(scripts, reg.scripts[pos])
	}
	return scripts
}

// IndexedRanges iterates over the Unicode range index in ascending order of
// range start, together with the owning script.
func (reg *Registry) IndexedRanges() iter.Seq2[UnicodeRange, *Script] {
	return func(yield func(UnicodeRange, *Script) bool) {
		if reg == nil {
			return
		}
		for _, entry := range reg.index {
			if !yield(entry.ur, entry.script) {
				return
			}
		}
	}
}

// --- Default registry ------------------------------------------------------

var (
	defaultRegistry         *Registry
	defaultRegistryCreation sync.Once
)

// Default returns the registry of all scripts of the OpenType script tag registry.
// It is built on first use and is read-only afterwards.
//
// Default panics if the static script table is inconsistent, which is a
// programming error.
func Default() *Registry {
	defaultRegistryCreation.Do(func() {
		defaultRegistry = MustBuild(registerScripts)
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
