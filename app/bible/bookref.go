package bible

import (
	"strconv"
	"strings"

	"github.com/mahesh-hegde/bibletext/app/common"
)

type bookRefKind int

const (
	refNone bookRefKind = iota
	refOrdinal
	refName
	refResolved
)

// BookRef names a book in one of three ways: by ordinal, by name or
// abbreviation, or as an already resolved Book. ResolveBook turns any of
// them into a Book of a particular Bible.
type BookRef struct {
	kind    bookRefKind
	ordinal int
	name    string
	book    Book
}

func ByOrdinal(n int) BookRef    { return BookRef{kind: refOrdinal, ordinal: n} }
func ByName(name string) BookRef { return BookRef{kind: refName, name: name} }
func Resolved(book Book) BookRef { return BookRef{kind: refResolved, book: book} }
func (r BookRef) IsZero() bool   { return r.kind == refNone }

func (r BookRef) String() string {
	switch r.kind {
	case refOrdinal:
		return strconv.Itoa(r.ordinal)
	case refName:
		return r.name
	case refResolved:
		return r.book.String()
	}
	return ""
}

// ResolveBook returns the book r refers to. A Resolved ref from another
// Bible is re-resolved by ordinal, so the result always belongs to b.
func (b *Bible) ResolveBook(r BookRef) (Book, error) {
	switch r.kind {
	case refOrdinal:
		return b.Book(r.ordinal)
	case refName:
		return b.FindBook(r.name)
	case refResolved:
		if r.book.IsZero() {
			break
		}
		if r.book.b == b {
			return r.book, nil
		}
		return b.Book(r.book.Number())
	}
	return Book{}, &common.ReferenceParseError{Input: r.String(), Token: r.String()}
}

// FindBook matches a book name, short name, alternative title, OSIS id or
// abbreviation. Matching ignores case, punctuation and spacing, and accepts
// roman or spelled-out ordinals ("II Kings", "First John").
func (b *Bible) FindBook(token string) (Book, error) {
	if bi, ok := b.names[common.FoldName(token)]; ok {
		return Book{b, bi}, nil
	}
	if bi, ok := b.names[common.CompactName(token)]; ok {
		return Book{b, bi}, nil
	}
	return Book{}, &common.ReferenceParseError{Input: token, Token: strings.TrimSpace(token)}
}
