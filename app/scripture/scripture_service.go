package scripture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/mahesh-hegde/bibletext/app/passage"
	"github.com/mahesh-hegde/bibletext/app/reference"
	"github.com/mahesh-hegde/bibletext/app/versetext"
)

// ErrInvalid is returned by Create and Update when the form has field errors.
var ErrInvalid = errors.New("invalid scripture")

type Service struct {
	store  *SQLiteStore
	verses *versetext.Service
}

func NewService(store *SQLiteStore, verses *versetext.Service) *Service {
	return &Service{store: store, verses: verses}
}

// Quotation is a scripture with its resolved passage and text.
type Quotation struct {
	Scripture Scripture
	Passage   passage.Passage
	Verses    []versetext.VerseText
}

func (s *Service) parser() *reference.Parser {
	return s.verses.Parser()
}

// CleanVerseField validates a single verse reference in translation and
// returns its canonical text, e.g. "jn 3.16" becomes "John 3:16".
func (s *Service) CleanVerseField(text, translation string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("this field is required")
	}
	ref, err := s.parser().Parse(text, translation)
	if err != nil {
		return "", err
	}
	if ref.Scope != reference.ScopeVerse {
		return "", fmt.Errorf("%q does not name a single verse", text)
	}
	return s.parser().FormatReference(ref)
}

// Validate checks every field of form separately and returns the cleaned
// scripture along with all field errors found.
func (s *Service) Validate(form Form) (Scripture, []common.FieldError) {
	var errs []common.FieldError
	fail := func(field string, err error) {
		errs = append(errs, common.FieldError{Field: field, Message: err.Error()})
	}

	sc := Scripture{ContentType: strings.TrimSpace(form.ContentType), ObjectID: form.ObjectID}
	var b *bible.Bible
	if version := strings.TrimSpace(form.Version); version == "" {
		fail("version", errors.New("this field is required"))
	} else if found, err := s.parser().Registry().Get(version); err != nil {
		fail("version", err)
	} else {
		b = found
		sc.Version = b.Code()
	}
	if sc.ContentType == "" {
		fail("content_type", errors.New("this field is required"))
	}
	if sc.ObjectID < 0 {
		fail("object_id", errors.New("must be a positive integer"))
	}
	if b == nil {
		return sc, errs
	}

	var err error
	startOK, endOK := false, false
	if sc.StartVerse, err = s.CleanVerseField(form.StartVerse, b.Code()); err != nil {
		fail("start_verse", err)
	} else {
		startOK = true
	}
	if strings.TrimSpace(form.EndVerse) != "" {
		if sc.EndVerse, err = s.CleanVerseField(form.EndVerse, b.Code()); err != nil {
			fail("end_verse", err)
		} else {
			endOK = true
		}
	}
	if startOK && endOK {
		if _, err := s.Passage(sc); err != nil {
			fail("end_verse", errors.New("end verse precedes start verse"))
		}
	}
	return sc, errs
}

func (s *Service) verse(text, translation string) (bible.Verse, error) {
	ref, err := s.parser().Parse(text, translation)
	if err != nil {
		return bible.Verse{}, err
	}
	return s.parser().Verse(ref)
}

// Populate fills the derived sort fields and Display from the reference text.
func (s *Service) Populate(sc *Scripture) error {
	start, err := s.verse(sc.StartVerse, sc.Version)
	if err != nil {
		return err
	}
	c := start.Coordinate()
	sc.StartBook, sc.StartChapter, sc.StartVerseNumber = c.Book, c.Chapter, c.Verse
	sc.EndBook, sc.EndChapter, sc.EndVerseNumber = 0, 0, 0
	sc.Display = start.String()
	if !sc.HasEnd() {
		return nil
	}
	end, err := s.verse(sc.EndVerse, sc.Version)
	if err != nil {
		return err
	}
	c = end.Coordinate()
	sc.EndBook, sc.EndChapter, sc.EndVerseNumber = c.Book, c.Chapter, c.Verse
	sc.Display = reference.FormatRange(start, end)
	return nil
}

// Passage resolves the quotation against its translation.
func (s *Service) Passage(sc Scripture) (passage.Passage, error) {
	return s.verses.Resolver().Resolve(sc.StartVerse, sc.EndVerse, sc.Version)
}

func (s *Service) save(ctx context.Context, sc Scripture) (Scripture, error) {
	if err := s.Populate(&sc); err != nil {
		return sc, err
	}
	if err := s.store.Save(ctx, sc); err != nil {
		return sc, fmt.Errorf("saving scripture: %w", err)
	}
	slog.Info("saved scripture", "id", sc.ID, "display", sc.Display, "owner", sc.ContentType, "object_id", sc.ObjectID)
	return sc, nil
}

// Create validates form and stores a new quotation. Field errors are
// returned together with an error wrapping ErrInvalid.
func (s *Service) Create(ctx context.Context, form Form) (Scripture, []common.FieldError, error) {
	sc, errs := s.Validate(form)
	if len(errs) > 0 {
		return sc, errs, ErrInvalid
	}
	sc.ID = uuid.New()
	sc, err := s.save(ctx, sc)
	return sc, nil, err
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, form Form) (Scripture, []common.FieldError, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return Scripture{}, nil, err
	}
	sc, errs := s.Validate(form)
	if len(errs) > 0 {
		return sc, errs, ErrInvalid
	}
	sc.ID = id
	sc, err := s.save(ctx, sc)
	return sc, nil, err
}

// Quote fetches the text of a stored quotation.
func (s *Service) Quote(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	sc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.Passage(sc)
	if err != nil {
		return nil, err
	}
	vs, err := s.verses.Passage(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Quotation{Scripture: sc, Passage: p, Verses: vs}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Scripture, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListFor(ctx context.Context, contentType string, objectID int64) ([]Scripture, error) {
	return s.store.ListFor(ctx, contentType, objectID)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Scripture, error) {
	return s.store.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}
