package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/mahesh-hegde/bibletext/app/config"
	"github.com/mahesh-hegde/bibletext/app/markdown"
	"github.com/mahesh-hegde/bibletext/app/reference"
	"github.com/mahesh-hegde/bibletext/app/scripture"
	"github.com/mahesh-hegde/bibletext/app/versetext"
)

type BibleTextController struct {
	verses     *versetext.Service
	scriptures *scripture.Service
	md         *markdown.MarkdownConverter
	conf       *config.BibleTextConfig
}

func NewBibleTextController(verses *versetext.Service, scriptures *scripture.Service, conf *config.BibleTextConfig) *BibleTextController {
	return &BibleTextController{
		verses:     verses,
		scriptures: scriptures,
		md:         markdown.NewMarkdownConverter(verses.Resolver()),
		conf:       conf,
	}
}

type BibleDetail struct {
	Bible       *bible.Bible
	OT          []bible.Book
	NT          []bible.Book
	FrontMatter markdown.FrontMatter
}

type BookDetail struct {
	Book  bible.Book
	First *versetext.ChapterData
}

func (bc *BibleTextController) bible(c echo.Context) (*bible.Bible, error) {
	return bc.verses.Registry().Get(c.Param("version"))
}

// book accepts an OSIS id, any name or abbreviation, or a book number.
func (bc *BibleTextController) book(c echo.Context) (bible.Book, error) {
	b, err := bc.bible(c)
	if err != nil {
		return bible.Book{}, err
	}
	param := c.Param("book")
	ref := bible.ByName(param)
	if n, err := strconv.Atoi(param); err == nil {
		ref = bible.ByOrdinal(n)
	}
	bk, err := b.ResolveBook(ref)
	if err != nil {
		return bible.Book{}, common.NewUserVisibleError(http.StatusNotFound, "No such book: "+param)
	}
	return bk, nil
}

func intParam(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, common.NewUserVisibleError(http.StatusBadRequest, "Invalid "+name+": "+c.Param(name))
	}
	return n, nil
}

// pathNotFound reports out-of-range path segments as missing pages.
func pathNotFound(err error) error {
	if errors.Is(err, common.ErrReferenceRange) {
		return common.NewUserVisibleError(http.StatusNotFound, err.Error())
	}
	return err
}

func (bc *BibleTextController) chapter(c echo.Context) (bible.Chapter, error) {
	bk, err := bc.book(c)
	if err != nil {
		return bible.Chapter{}, err
	}
	n, err := intParam(c, "chapter")
	if err != nil {
		return bible.Chapter{}, err
	}
	ch, err := bk.ChapterByNumber(n)
	return ch, pathNotFound(err)
}

func (bc *BibleTextController) verse(c echo.Context) (bible.Verse, error) {
	ch, err := bc.chapter(c)
	if err != nil {
		return bible.Verse{}, err
	}
	n, err := intParam(c, "verse")
	if err != nil {
		return bible.Verse{}, err
	}
	v, err := ch.VerseByNumber(n)
	return v, pathNotFound(err)
}

func (bc *BibleTextController) GetBibleList(c echo.Context) error {
	return c.Render(http.StatusOK, "bible_list", bc.verses.Registry().Translations())
}

func (bc *BibleTextController) GetBible(c echo.Context) error {
	b, err := bc.bible(c)
	if err != nil {
		return err
	}
	fm, err := bc.md.FrontMatter(b)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bible_detail", &BibleDetail{
		Bible:       b,
		OT:          b.OldTestament(),
		NT:          b.NewTestament(),
		FrontMatter: fm,
	})
}

func (bc *BibleTextController) GetBook(c echo.Context) error {
	bk, err := bc.book(c)
	if err != nil {
		return err
	}
	first, err := bc.verses.Chapter(c.Request().Context(), bk.FirstChapter())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_detail", &BookDetail{Book: bk, First: first})
}

func (bc *BibleTextController) GetChapter(c echo.Context) error {
	ch, err := bc.chapter(c)
	if err != nil {
		return err
	}
	cd, err := bc.verses.Chapter(c.Request().Context(), ch)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "chapter_detail", cd)
}

func (bc *BibleTextController) GetVerse(c echo.Context) error {
	v, err := bc.verse(c)
	if err != nil {
		return err
	}
	vd, err := bc.verses.VerseAt(c.Request().Context(), v)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "verse_detail", vd)
}

func (bc *BibleTextController) GetPassage(c echo.Context) error {
	b, err := bc.bible(c)
	if err != nil {
		return err
	}
	q := c.QueryParam("q")
	if q == "" {
		return c.Redirect(http.StatusFound, markdown.BibleURL(b))
	}
	pd, err := bc.verses.Lookup(c.Request().Context(), q, b.Code())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "passage", pd)
}

func (bc *BibleTextController) Search(c echo.Context) error {
	var params versetext.SearchParams
	if err := c.Bind(&params); err != nil {
		return err
	}
	sd, err := bc.verses.Search(c.Request().Context(), c.Param("version"), params)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "search", sd)
}

// ParseResult is the API view of a parsed reference or range.
type ParseResult struct {
	Input        string              `json:"input"`
	Translation  string              `json:"translation"`
	Scope        string              `json:"scope"`
	Start        reference.Reference `json:"start"`
	End          reference.Reference `json:"end"`
	Canonical    string              `json:"canonical"`
	StartOrdinal int                 `json:"start_ordinal"`
	EndOrdinal   int                 `json:"end_ordinal"`
}

func (bc *BibleTextController) ApiParse(c echo.Context) error {
	q, t := c.QueryParam("q"), c.QueryParam("t")
	start, end, err := bc.verses.Parser().ParseRange(q, t)
	if err != nil {
		return err
	}
	p, err := bc.verses.Resolver().ResolveRange(q, t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &ParseResult{
		Input:        q,
		Translation:  p.Bible().Code(),
		Scope:        start.Scope.String(),
		Start:        start,
		End:          end,
		Canonical:    p.String(),
		StartOrdinal: p.StartOrdinal(),
		EndOrdinal:   p.EndOrdinal(),
	})
}

type verseResponse struct {
	Reference string              `json:"reference"`
	Verse     versetext.VerseText `json:"verse"`
	Prev      string              `json:"prev,omitempty"`
	Next      string              `json:"next,omitempty"`
}

func verseURLOrEmpty(v bible.Verse) string {
	if v.IsZero() {
		return ""
	}
	return markdown.VerseURL(v)
}

func (bc *BibleTextController) ApiGetVerse(c echo.Context) error {
	v, err := bc.verse(c)
	if err != nil {
		return err
	}
	vd, err := bc.verses.VerseAt(c.Request().Context(), v)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &verseResponse{
		Reference: vd.Verse.String(),
		Verse:     vd.Text,
		Prev:      verseURLOrEmpty(vd.Prev),
		Next:      verseURLOrEmpty(vd.Next),
	})
}

type passageResponse struct {
	Reference string                `json:"reference"`
	Verses    []versetext.VerseText `json:"verses"`
	Missing   int                   `json:"missing"`
}

func (bc *BibleTextController) ApiGetPassage(c echo.Context) error {
	b, err := bc.bible(c)
	if err != nil {
		return err
	}
	pd, err := bc.verses.Lookup(c.Request().Context(), c.QueryParam("q"), b.Code())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &passageResponse{
		Reference: pd.Passage.String(),
		Verses:    pd.Verses,
		Missing:   pd.Missing,
	})
}

// FieldErrors is returned with status 422 when a quotation form is invalid.
type FieldErrors struct {
	Errors []common.FieldError `json:"errors"`
}

func scriptureID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, common.NewUserVisibleError(http.StatusBadRequest, "Invalid quotation id")
	}
	return id, nil
}

func (bc *BibleTextController) ApiCreateScripture(c echo.Context) error {
	var form scripture.Form
	if err := c.Bind(&form); err != nil {
		return err
	}
	sc, fieldErrs, err := bc.scriptures.Create(c.Request().Context(), form)
	if len(fieldErrs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, &FieldErrors{Errors: fieldErrs})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sc)
}

func (bc *BibleTextController) ApiUpdateScripture(c echo.Context) error {
	id, err := scriptureID(c)
	if err != nil {
		return err
	}
	var form scripture.Form
	if err := c.Bind(&form); err != nil {
		return err
	}
	sc, fieldErrs, err := bc.scriptures.Update(c.Request().Context(), id, form)
	if len(fieldErrs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, &FieldErrors{Errors: fieldErrs})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sc)
}

// ApiGetScripture returns a quotation together with its text.
func (bc *BibleTextController) ApiGetScripture(c echo.Context) error {
	id, err := scriptureID(c)
	if err != nil {
		return err
	}
	q, err := bc.scriptures.Quote(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"scripture": q.Scripture,
		"reference": q.Passage.String(),
		"verses":    q.Verses,
	})
}

func (bc *BibleTextController) ApiDeleteScripture(c echo.Context) error {
	id, err := scriptureID(c)
	if err != nil {
		return err
	}
	if err := bc.scriptures.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ApiListScriptures lists the quotations attached to an object when
// content_type and object_id are given, otherwise it filters by version and book.
func (bc *BibleTextController) ApiListScriptures(c echo.Context) error {
	ctx := c.Request().Context()
	if ct := c.QueryParam("content_type"); ct != "" {
		objectID, err := strconv.ParseInt(c.QueryParam("object_id"), 10, 64)
		if err != nil {
			return common.NewUserVisibleError(http.StatusBadRequest, "Invalid object_id")
		}
		scs, err := bc.scriptures.ListFor(ctx, ct, objectID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, scs)
	}
	var f scripture.ListFilter
	if err := c.Bind(&f); err != nil {
		return err
	}
	scs, err := bc.scriptures.List(ctx, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scs)
}

// errorBody is the JSON error payload of /api routes.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func errorMessage(err error, code int) string {
	var uve *common.UserVisibleError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &uve):
		return uve.Message
	case errors.As(err, &he):
		if he.Message != nil {
			if s, ok := he.Message.(string); ok {
				return s
			}
		}
		return http.StatusText(he.Code)
	case code < 500:
		return err.Error()
	}
	return http.StatusText(code)
}
