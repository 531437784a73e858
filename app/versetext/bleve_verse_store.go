package versetext

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
)

const translationIDPrefix = "translation:"

// VerseInDB is the bleve document of one verse. V holds the JSON of the
// VerseText and is stored but not indexed.
type VerseInDB struct {
	DocType     string `json:"_type"`
	V           string `json:"v"`
	Translation string `json:"translation"`
	Book        int    `json:"book"`
	Chapter     int    `json:"chapter"`
	Ordinal     int    `json:"ordinal"`
	Text        string `json:"text"`
	// TextK is the unanalyzed text, for regex search.
	TextK string `json:"text_k"`
	// TextF is ascii-folded, for accent-insensitive matches.
	TextF string `json:"text_f"`
}

func (VerseInDB) Type() string {
	return "verse"
}

type TranslationInDB struct {
	DocType string `json:"_type"`
	Code    string `json:"code"`
	Name    string `json:"name"`
}

func (TranslationInDB) Type() string {
	return "translation"
}

type BleveStore struct {
	idx       bleve.Index
	fuzziness int
}

var _ Store = &BleveStore{}

func NewBleveStore(idx bleve.Index, fuzziness int) *BleveStore {
	return &BleveStore{idx: idx, fuzziness: fuzziness}
}

func (b *BleveStore) Init() error {
	return nil
}

func (b *BleveStore) Register(ctx context.Context, code, name string) error {
	return b.idx.Index(translationIDPrefix+code, &TranslationInDB{DocType: "translation", Code: code, Name: name})
}

func (b *BleveStore) Translations(ctx context.Context) ([]TranslationRow, error) {
	q := bleve.NewTermQuery("translation")
	q.SetField("_type")
	req := bleve.NewSearchRequest(q)
	req.Size = 1000
	req.Fields = []string{"code", "name"}
	req.SortBy([]string{"code"})
	res, err := b.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}
	var out []TranslationRow
	for _, hit := range res.Hits {
		code, _ := hit.Fields["code"].(string)
		name, _ := hit.Fields["name"].(string)
		if code == "" {
			code = strings.TrimPrefix(hit.ID, translationIDPrefix)
		}
		out = append(out, TranslationRow{Code: code, Name: name})
	}
	return out, nil
}

func prepareVerseForDb(translation string, v VerseText) (VerseInDB, error) {
	v.Translation = translation
	raw, err := json.Marshal(v)
	if err != nil {
		return VerseInDB{}, err
	}
	return VerseInDB{
		DocType:     "verse",
		V:           string(raw),
		Translation: translation,
		Book:        v.Book,
		Chapter:     v.Chapter,
		Ordinal:     v.Ordinal,
		Text:        v.Text,
		TextK:       v.Text,
		TextF:       v.Text,
	}, nil
}

func (b *BleveStore) Add(ctx context.Context, translation string, vs []VerseText) error {
	batch := b.idx.NewBatch()
	for _, v := range vs {
		doc, err := prepareVerseForDb(translation, v)
		if err != nil {
			return err
		}
		if err := batch.Index(verseID(translation, v.Coordinate()), &doc); err != nil {
			return err
		}
	}
	return b.idx.Batch(batch)
}

func bleveDocToVerse(fields map[string]any) (VerseText, error) {
	raw, ok := fields["v"].(string)
	if !ok {
		return VerseText{}, fmt.Errorf("missing field v in document")
	}
	var v VerseText
	err := json.Unmarshal([]byte(raw), &v)
	return v, err
}

func (b *BleveStore) search(ctx context.Context, q query.Query, size int, sortBy ...string) ([]VerseText, error) {
	req := bleve.NewSearchRequest(q)
	req.Size = size
	req.Fields = []string{"v"}
	if len(sortBy) > 0 {
		req.SortBy(sortBy)
	}
	res, err := b.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}
	out := make([]VerseText, 0, len(res.Hits))
	for _, hit := range res.Hits {
		v, err := bleveDocToVerse(hit.Fields)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (b *BleveStore) Lookup(ctx context.Context, translation string, c bible.Coordinate) (VerseText, error) {
	vs, err := b.search(ctx, bleve.NewDocIDQuery([]string{verseID(translation, c)}), 1)
	if err != nil {
		return VerseText{}, err
	}
	if len(vs) == 0 {
		return VerseText{}, notFound(translation, c)
	}
	return vs[0], nil
}

func translationQuery(translation string) query.Query {
	q := bleve.NewTermQuery(translation)
	q.SetField("translation")
	return q
}

func numericEquals(field string, n int) query.Query {
	f := float64(n)
	incl := true
	q := bleve.NewNumericRangeInclusiveQuery(&f, &f, &incl, &incl)
	q.SetField(field)
	return q
}

func (b *BleveStore) RangeByOrdinal(ctx context.Context, translation string, start, count int) ([]VerseText, error) {
	if count <= 0 {
		return nil, nil
	}
	lo, hi := float64(start), float64(start+count-1)
	incl := true
	rq := bleve.NewNumericRangeInclusiveQuery(&lo, &hi, &incl, &incl)
	rq.SetField("ordinal")
	return b.search(ctx, bleve.NewConjunctionQuery(translationQuery(translation), rq), count, "ordinal")
}

func (b *BleveStore) Chapter(ctx context.Context, translation string, book, chapter int) ([]VerseText, error) {
	q := bleve.NewConjunctionQuery(translationQuery(translation), numericEquals("book", book), numericEquals("chapter", chapter))
	// the longest chapter, Psalm 119, has 176 verses
	return b.search(ctx, q, 200, "ordinal")
}

func (b *BleveStore) Search(ctx context.Context, translation string, params SearchParams) ([]HighlightedVerse, error) {
	q := strings.TrimSpace(params.Q)
	if q == "" {
		return nil, nil
	}

	var contentQuery query.Query
	switch params.Mode {
	case SearchRegex:
		// the automaton matches whole terms, so anchors become implicit
		re := q
		if strings.HasPrefix(re, "^") {
			re = re[1:]
		} else if !strings.HasPrefix(re, ".*") {
			re = ".*" + re
		}
		if strings.HasSuffix(re, "$") {
			re = re[:len(re)-1]
		} else if !strings.HasSuffix(re, ".*") {
			re = re + ".*"
		}
		bq := bleve.NewRegexpQuery(re)
		bq.SetField("text_k")
		contentQuery = bq
	case SearchFuzzy:
		bq := bleve.NewFuzzyQuery(strings.ToLower(q))
		bq.SetField("text")
		bq.Fuzziness = b.fuzziness
		contentQuery = bq
	case SearchPrefix:
		bq := bleve.NewPrefixQuery(strings.ToLower(q))
		bq.SetField("text")
		contentQuery = bq
	case SearchExact, "":
		bq := bleve.NewMatchPhraseQuery(q)
		bq.SetField("text")
		bq.SetBoost(1.2)
		bqa := bleve.NewMatchPhraseQuery(q)
		bqa.SetField("text_f")
		bqa.SetBoost(0.9)
		contentQuery = bleve.NewDisjunctionQuery(bq, bqa)
	default:
		return nil, common.NewUserVisibleError(422, "Unsupported search mode")
	}

	conj := []query.Query{translationQuery(translation), contentQuery}
	if params.Book > 0 {
		conj = append(conj, numericEquals("book", params.Book))
	}
	req := bleve.NewSearchRequest(bleve.NewConjunctionQuery(conj...))
	req.Size = searchLimit(params)
	req.Fields = []string{"v"}
	req.Highlight = bleve.NewHighlightWithStyle("html")
	req.Highlight.AddField("text")
	if params.Mode == SearchRegex {
		req.SortBy([]string{"ordinal"})
	} else {
		req.SortBy([]string{"-_score", "ordinal"})
	}

	res, err := b.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}
	var out []HighlightedVerse
	for _, hit := range res.Hits {
		v, err := bleveDocToVerse(hit.Fields)
		if err != nil {
			slog.Info("failed to convert doc to verse", "err", err)
			continue
		}
		hv := HighlightedVerse{VerseText: v, TextHl: html.EscapeString(v.Text)}
		if frags, ok := hit.Fragments["text"]; ok && len(frags) > 0 {
			hv.TextHl = strings.Join(frags, " … ")
		}
		out = append(out, hv)
	}
	return out, nil
}
