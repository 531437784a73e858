package reference

import (
	"errors"
	"math"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// rangeGrammar accepts "Romans 1:1", "Romans 1:1-2:3", "John 3:16-18",
// "Genesis 1-2" and "Romans 1:1 - 1 Corinthians 2:3".
//
//nolint:govet // participle grammar tags are not standard struct tags
type rangeGrammar struct {
	Start *pointGrammar `@@`
	End   *endGrammar   `( "-" @@ )?`
}

//nolint:govet
type pointGrammar struct {
	Book    string       `@Book`
	Chapter *chapterPart `@@?`
}

// endGrammar is a point whose book may be omitted, in which case it inherits
// the start's book.
//
//nolint:govet
type endGrammar struct {
	Book    *string      `( @Book`
	Chapter *chapterPart `  @@? | @@ )`
}

//nolint:govet
type chapterPart struct {
	Number number  `@Number`
	Sep    *string `( @(":" | ".")`
	Verse  number  `  @Number )?`
}

func (cp *chapterPart) chapter() int {
	return int(cp.Number)
}

// verse is nil for a chapter-only point.
func (cp *chapterPart) verse() *int {
	if cp.Sep == nil {
		return nil
	}
	n := int(cp.Verse)
	return &n
}

// number saturates at math.MaxInt, so an oversized chapter or verse is
// reported as out of range rather than as a syntax error.
type number int

func (n *number) Capture(values []string) error {
	v, err := strconv.Atoi(values[0])
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			v = math.MaxInt
		} else {
			return err
		}
	}
	*n = number(v)
	return nil
}

// refLexer splits references. Book names may carry a numeric prefix
// ("1 John", "2Kgs"), span several words ("Song of Solomon") and end
// in an abbreviation period.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d+\s*)?\pL+(?:\s+\pL+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[:.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	pointParser = participle.MustBuild[pointGrammar](
		participle.Lexer(refLexer),
		participle.Elide("Whitespace"),
	)
	rangeParser = participle.MustBuild[rangeGrammar](
		participle.Lexer(refLexer),
		participle.Elide("Whitespace"),
	)
)
