package bible

import (
	"fmt"
	"strings"

	"github.com/mahesh-hegde/bibletext/app/common"
)

// TranslationRegistry holds the Bibles known to a process. It is filled at
// startup and read-only afterwards, so it needs no locking.
type TranslationRegistry struct {
	bibles []*Bible
	byCode map[string]*Bible
}

func NewTranslationRegistry(bibles ...*Bible) (*TranslationRegistry, error) {
	r := &TranslationRegistry{byCode: make(map[string]*Bible)}
	for _, b := range bibles {
		if err := r.Register(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func normCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *TranslationRegistry) Register(b *Bible) error {
	code := normCode(b.Code())
	if _, dup := r.byCode[code]; dup {
		return &common.ConfigurationError{Translation: b.Code(), Message: "translation registered twice"}
	}
	r.byCode[code] = b
	r.bibles = append(r.bibles, b)
	return nil
}

// Get looks a translation up by code, ignoring case.
// An empty code returns the default translation.
func (r *TranslationRegistry) Get(code string) (*Bible, error) {
	if strings.TrimSpace(code) == "" {
		if b := r.Default(); b != nil {
			return b, nil
		}
	}
	if b, ok := r.byCode[normCode(code)]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnknownTranslation, code)
}

func (r *TranslationRegistry) MustGet(code string) *Bible {
	b, err := r.Get(code)
	if err != nil {
		panic(err)
	}
	return b
}

func (r *TranslationRegistry) Has(code string) bool {
	_, ok := r.byCode[normCode(code)]
	return ok
}

// Default is the first registered translation, or nil when there is none.
func (r *TranslationRegistry) Default() *Bible {
	if len(r.bibles) == 0 {
		return nil
	}
	return r.bibles[0]
}

// Translations lists Bibles in registration order.
func (r *TranslationRegistry) Translations() []*Bible {
	return append([]*Bible(nil), r.bibles...)
}

func (r *TranslationRegistry) Codes() []string {
	codes := make([]string, len(r.bibles))
	for i, b := range r.bibles {
		codes[i] = b.Code()
	}
	return codes
}
