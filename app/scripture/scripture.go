// Package scripture attaches Bible quotations to arbitrary owners, such as a
// sermon or a blog post, identified by a content type and object id.
package scripture

import (
	"github.com/google/uuid"
)

// Scripture is a quotation of a verse or a passage in one translation.
// StartVerse and EndVerse hold canonical reference text; the numeric fields
// are derived from them by Populate and exist for sorting and filtering.
type Scripture struct {
	ID         uuid.UUID `json:"id"`
	StartVerse string    `json:"start_verse"`
	// EndVerse is empty for a single verse.
	EndVerse string `json:"end_verse,omitempty"`
	Version  string `json:"version"`

	ContentType string `json:"content_type"`
	ObjectID    int64  `json:"object_id"`

	StartBook        int `json:"start_book"`
	StartChapter     int `json:"start_chapter"`
	StartVerseNumber int `json:"start_verse_number"`
	// zero when EndVerse is empty
	EndBook        int `json:"end_book,omitempty"`
	EndChapter     int `json:"end_chapter,omitempty"`
	EndVerseNumber int `json:"end_verse_number,omitempty"`

	// Display is the formatted passage, e.g. "John 3:16-18".
	Display string `json:"display"`
}

func (s Scripture) String() string {
	switch {
	case s.Display != "":
		return s.Display
	case s.EndVerse != "":
		return s.StartVerse + " - " + s.EndVerse
	}
	return s.StartVerse
}

// HasEnd reports whether the quotation spans more than its start verse.
func (s Scripture) HasEnd() bool {
	return s.EndVerse != ""
}

// Form is the user input for creating or editing a quotation.
type Form struct {
	StartVerse  string `json:"start_verse" form:"start_verse"`
	EndVerse    string `json:"end_verse" form:"end_verse"`
	Version     string `json:"version" form:"version"`
	ContentType string `json:"content_type" form:"content_type"`
	ObjectID    int64  `json:"object_id" form:"object_id"`
}

// ListFilter selects quotations by version and start book. Zero values match everything.
type ListFilter struct {
	Version   string `query:"version"`
	StartBook int    `query:"start_book"`
}
