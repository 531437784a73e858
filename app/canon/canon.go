// Package canon holds the static per-book metadata (names, abbreviations,
// chapter and verse counts, omissions) that every translation is indexed from.
package canon

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/mahesh-hegde/bibletext/app/common"
)

type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// BookDefinition is the immutable canon entry of one book.
// JSON keys are the short book_data names: shortname, altname, abbrs, verse_counts.
type BookDefinition struct {
	// Number is the ordinal in canon order, starting at 1. It is derived from list order.
	Number    int       `json:"-"`
	Name      string    `json:"name"`
	ShortName string    `json:"shortname,omitempty"`
	AltName   string    `json:"altname,omitempty"`
	OSIS      string    `json:"osis,omitempty"`
	Testament Testament `json:"testament"`
	// Abbreviations are matched case- and punctuation-insensitively.
	Abbreviations []string `json:"abbrs,omitempty"`
	// VerseCounts has one entry per chapter.
	VerseCounts []int `json:"verse_counts"`
	// Omissions maps a chapter number to verse numbers excluded from the running numbering.
	Omissions map[int][]int `json:"omissions,omitempty"`
}

func (d BookDefinition) NumChapters() int {
	return len(d.VerseCounts)
}

// IsOmitted reports whether chapter:verse is excluded in this canon.
func (d BookDefinition) IsOmitted(chapter, verse int) bool {
	return slices.Contains(d.Omissions[chapter], verse)
}

// NumVerses is the number of present verses, omissions excluded.
func (d BookDefinition) NumVerses() int {
	n := 0
	for ch, count := range d.VerseCounts {
		n += count - len(d.Omissions[ch+1])
	}
	return n
}

func (d BookDefinition) clone() BookDefinition {
	c := d
	c.Abbreviations = slices.Clone(d.Abbreviations)
	c.VerseCounts = slices.Clone(d.VerseCounts)
	if d.Omissions != nil {
		c.Omissions = make(map[int][]int, len(d.Omissions))
		for ch, vs := range d.Omissions {
			c.Omissions[ch] = slices.Clone(vs)
		}
	}
	return c
}

// Clone deep-copies defs, omission lists included.
func Clone(defs []BookDefinition) []BookDefinition {
	out := make([]BookDefinition, len(defs))
	for i, d := range defs {
		out[i] = d.clone()
	}
	return out
}

// Table maps translation codes to canon definitions. It is filled during startup
// and only read afterwards.
type Table struct {
	canons map[string][]BookDefinition
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{canons: make(map[string][]BookDefinition)}
}

// Builtin returns a table holding the canons compiled into the binary.
func Builtin() *Table {
	t := NewTable()
	for code, defs := range map[string][]BookDefinition{"KJV": kjvBooks(), "NIV": nivBooks()} {
		if err := t.Register(code, defs); err != nil {
			panic(err)
		}
	}
	return t
}

// Load returns the built-in canon for translation.
func Load(translation string) ([]BookDefinition, error) {
	return Builtin().Load(translation)
}

func key(translation string) string {
	return strings.ToUpper(strings.TrimSpace(translation))
}

// Load returns a copy of the canon registered for translation.
func (t *Table) Load(translation string) ([]BookDefinition, error) {
	defs, ok := t.canons[key(translation)]
	if !ok {
		return nil, &common.ConfigurationError{Translation: translation, Message: "no canon data"}
	}
	return Clone(defs), nil
}

// Has reports whether a canon is registered for translation.
func (t *Table) Has(translation string) bool {
	_, ok := t.canons[key(translation)]
	return ok
}

// Translations lists the registered codes in sorted order.
func (t *Table) Translations() []string {
	codes := make([]string, 0, len(t.canons))
	for c := range t.canons {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Register validates defs and stores a copy under translation, replacing any earlier entry.
func (t *Table) Register(translation string, defs []BookDefinition) error {
	defs = Clone(defs)
	if err := Validate(translation, defs); err != nil {
		return err
	}
	t.canons[key(translation)] = defs
	return nil
}

// LoadFile reads a JSON canon (a list of book definitions in canon order)
// and registers it under translation.
func (t *Table) LoadFile(translation, path string) error {
	defs, err := LoadFile(path)
	if err != nil {
		return err
	}
	slog.Info("loaded canon file", "translation", translation, "path", path, "books", len(defs))
	return t.Register(translation, defs)
}

// LoadFile decodes and validates a JSON canon file. Book numbers are assigned from list order.
func LoadFile(path string) ([]BookDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &common.ConfigurationError{Message: "reading canon file " + path, Err: err}
	}
	var defs []BookDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, &common.ConfigurationError{Message: "decoding canon file " + path, Err: err}
	}
	for i := range defs {
		defs[i].Number = i + 1
	}
	if err := Validate(path, defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Validate checks the invariants of a canon: contiguous ordinals from 1,
// one positive verse count per chapter, and omissions inside the chapter bounds.
func Validate(translation string, defs []BookDefinition) error {
	fail := func(format string, args ...any) error {
		return &common.ConfigurationError{Translation: translation, Message: fmt.Sprintf(format, args...)}
	}
	if len(defs) == 0 {
		return fail("no books defined")
	}
	for i := range defs {
		d := &defs[i]
		if d.Number != i+1 {
			return fail("book %q has ordinal %d, expected %d", d.Name, d.Number, i+1)
		}
		if strings.TrimSpace(d.Name) == "" {
			return fail("book %d has no name", d.Number)
		}
		if d.ShortName == "" {
			d.ShortName = d.Name
		}
		if d.Testament != OldTestament && d.Testament != NewTestament {
			return fail("book %q has unknown testament %q", d.Name, d.Testament)
		}
		if len(d.VerseCounts) == 0 {
			return fail("book %q has no chapters", d.Name)
		}
		for ch, count := range d.VerseCounts {
			if count < 1 {
				return fail("book %q chapter %d has verse count %d", d.Name, ch+1, count)
			}
		}
		for ch, verses := range d.Omissions {
			if ch < 1 || ch > len(d.VerseCounts) {
				return fail("book %q omits verses in chapter %d, which does not exist", d.Name, ch)
			}
			max := d.VerseCounts[ch-1]
			seen := make(map[int]bool, len(verses))
			for _, v := range verses {
				if v < 1 || v > max {
					return fail("book %q chapter %d omits verse %d outside [1, %d]", d.Name, ch, v, max)
				}
				if seen[v] {
					return fail("book %q chapter %d omits verse %d twice", d.Name, ch, v)
				}
				seen[v] = true
			}
			if len(verses) >= max {
				return fail("book %q chapter %d omits every verse", d.Name, ch)
			}
		}
	}
	return nil
}
