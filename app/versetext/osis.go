package versetext

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/mahesh-hegde/bibletext/app/bible"
)

// elements whose text is not part of the verse
var skippedOSISElements = map[string]bool{
	"note":  true,
	"title": true,
	"rdg":   true,
}

type osisCollector struct {
	b       *bible.Bible
	out     []VerseText
	current string
	buf     strings.Builder
	skipped int
}

// parseOSISID turns "Gen.1.1" (or the first id of "Gen.1.1 Gen.1.2") into a verse of b.
func parseOSISID(b *bible.Bible, id string) (bible.Verse, error) {
	id, _, _ = strings.Cut(strings.TrimSpace(id), " ")
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return bible.Verse{}, fmt.Errorf("malformed osisID %q", id)
	}
	book, err := b.FindBook(parts[0])
	if err != nil {
		return bible.Verse{}, err
	}
	ch, err := strconv.Atoi(parts[1])
	if err != nil {
		return bible.Verse{}, fmt.Errorf("malformed chapter in osisID %q", id)
	}
	vn, err := strconv.Atoi(parts[2])
	if err != nil {
		return bible.Verse{}, fmt.Errorf("malformed verse in osisID %q", id)
	}
	return b.Lookup(bible.Coordinate{Book: book.Number(), Chapter: ch, Verse: vn})
}

func (c *osisCollector) emit(id, text string) {
	v, err := parseOSISID(c.b, id)
	if err != nil {
		slog.Warn("skipping OSIS verse", "osisID", id, "err", err)
		c.skipped++
		return
	}
	co := v.Coordinate()
	c.out = append(c.out, VerseText{
		Translation: c.b.Code(),
		Book:        co.Book,
		Chapter:     co.Chapter,
		Verse:       co.Verse,
		Ordinal:     v.Ordinal(),
		Text:        strings.Join(strings.Fields(text), " "),
	})
}

func textOf(n *xmlquery.Node, sb *strings.Builder) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			sb.WriteString(ch.Data)
		case xmlquery.ElementNode:
			if !skippedOSISElements[ch.Data] {
				textOf(ch, sb)
			}
		}
	}
}

func (c *osisCollector) walk(n *xmlquery.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if c.current != "" {
				c.buf.WriteString(ch.Data)
			}
		case xmlquery.ElementNode:
			if ch.Data == "verse" {
				c.verse(ch)
				continue
			}
			if skippedOSISElements[ch.Data] {
				continue
			}
			c.walk(ch)
		}
	}
}

func (c *osisCollector) verse(n *xmlquery.Node) {
	switch {
	case n.SelectAttr("sID") != "":
		c.flush()
		c.current = n.SelectAttr("osisID")
		if c.current == "" {
			c.current = n.SelectAttr("sID")
		}
	case n.SelectAttr("eID") != "":
		c.flush()
	case n.SelectAttr("osisID") != "":
		// container form: the text is inside the element
		var sb strings.Builder
		textOf(n, &sb)
		c.emit(n.SelectAttr("osisID"), sb.String())
	}
}

func (c *osisCollector) flush() {
	if c.current != "" {
		c.emit(c.current, c.buf.String())
	}
	c.current = ""
	c.buf.Reset()
}

// ParseOSIS extracts verse texts from an OSIS XML document. Both container
// verses (<verse osisID="..">text</verse>) and milestones (sID/eID pairs)
// are understood. Verses that do not exist in b are skipped with a warning.
func ParseOSIS(r io.Reader, b *bible.Bible) ([]VerseText, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing OSIS XML: %w", err)
	}
	root := doc
	if text := xmlquery.FindOne(doc, "//osisText"); text != nil {
		root = text
	}
	c := &osisCollector{b: b}
	c.walk(root)
	c.flush()
	if c.skipped > 0 {
		slog.Warn("OSIS verses skipped", "count", c.skipped, "translation", b.Code())
	}
	return c.out, nil
}

// OSISTitle returns the work title from the OSIS header, if any.
func OSISTitle(r io.Reader) (string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return "", err
	}
	if t := xmlquery.FindOne(doc, "//header/work/title"); t != nil {
		return strings.TrimSpace(t.InnerText()), nil
	}
	return "", nil
}

// ConvertOSIS parses OSIS from in and writes one JSON VerseText per line to out.
func ConvertOSIS(in io.Reader, out io.Writer, b *bible.Bible) (int, error) {
	vs, err := ParseOSIS(in, b)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for _, v := range vs {
		if err := enc.Encode(v); err != nil {
			return 0, err
		}
	}
	return len(vs), w.Flush()
}
