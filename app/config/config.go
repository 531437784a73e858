package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/common"
)

type TranslationDefn struct {
	// Translation code used in URLs and references. Eg: KJV
	Code     string `json:"code"`
	Name     string `json:"name"`
	Language string `json:"language"`

	// Name of a built-in canon. Defaults to Code.
	Canon string `json:"canon"`
	// JSON canon file relative to the data dir. Takes precedence over Canon.
	CanonFile string `json:"canon_file"`

	ChapterText string `json:"chapter_text"`
	PsalmText   string `json:"psalm_text"`

	// File with verses encoded as JSONL
	DataFile string `json:"data_file"`

	// Markdown front matter, relative to the data dir
	IntroductionFile string `json:"introduction_file"`
	PrefaceFile      string `json:"preface_file"`
	TitlePageFile    string `json:"title_page_file"`
}

type BibleTextConfig struct {
	InstanceName       string            `json:"instance_name"`
	DataDir            string            `json:"-"`
	DefaultTranslation string            `json:"default_translation"`
	Store              string            `json:"store"`
	CacheTTLSeconds    int               `json:"cache_ttl_seconds"`
	Fuzziness          int               `json:"fuzziness"`
	TimeoutSeconds     int               `json:"timeout_seconds"`
	LogLatency         bool              `json:"log_latency"`
	Hostnames          []string          `json:"hostnames"`
	Translations       []TranslationDefn `json:"translations"`
}

// ServerRuntimeConfig holds deployment settings that do not belong in config.json.
type ServerRuntimeConfig struct {
	Addr               string `env:"ADDR" envDefault:"localhost"`
	Port               int    `env:"PORT" envDefault:"8080"`
	CertDir            string `env:"CERT_DIR"`
	AcmeEnabled        bool   `env:"ACME"`
	RateLimit          int    `env:"RATE_LIMIT"`
	GzipLevel          int    `env:"GZIP_LEVEL"`
	BehindLoadBalancer bool   `env:"BEHIND_LB"`
}

// ReadConfig reads config.json from dataDir and applies defaults.
func ReadConfig(dataDir string) (*BibleTextConfig, error) {
	confPath := path.Join(dataDir, "config.json")
	confFile, err := os.Open(confPath)
	if err != nil {
		return nil, &common.ConfigurationError{Message: "opening " + confPath, Err: err}
	}
	defer confFile.Close()

	var conf BibleTextConfig
	if err := json.NewDecoder(confFile).Decode(&conf); err != nil {
		return nil, &common.ConfigurationError{Message: "decoding " + confPath, Err: err}
	}
	conf.DataDir = dataDir
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *BibleTextConfig) validate() error {
	if c.Store == "" {
		c.Store = "sqlite"
	}
	if c.Store != "sqlite" && c.Store != "bleve" {
		return &common.ConfigurationError{Message: fmt.Sprintf("unknown store %q", c.Store)}
	}
	if len(c.Translations) == 0 {
		return &common.ConfigurationError{Message: "no translations configured"}
	}
	seen := map[string]bool{}
	for _, t := range c.Translations {
		code := strings.ToUpper(t.Code)
		if code == "" {
			return &common.ConfigurationError{Message: "translation without code"}
		}
		if seen[code] {
			return &common.ConfigurationError{Translation: t.Code, Message: "duplicate translation"}
		}
		seen[code] = true
	}
	if c.DefaultTranslation != "" && !seen[strings.ToUpper(c.DefaultTranslation)] {
		return &common.ConfigurationError{Translation: c.DefaultTranslation, Message: "default translation is not configured"}
	}
	return nil
}

// ReadServerRuntimeConfig reads BIBLETEXT_* environment variables.
func ReadServerRuntimeConfig() (ServerRuntimeConfig, error) {
	var rc ServerRuntimeConfig
	if err := env.ParseWithOptions(&rc, env.Options{Prefix: "BIBLETEXT_"}); err != nil {
		return rc, &common.ConfigurationError{Message: "reading environment", Err: err}
	}
	return rc, nil
}

func (c *BibleTextConfig) readOptional(file string) string {
	if file == "" {
		return ""
	}
	data, err := os.ReadFile(path.Join(c.DataDir, file))
	if err != nil {
		slog.Warn("failed to read front matter", "file", file, "err", err)
		return ""
	}
	return string(data)
}

// Canon returns the book definitions of t, from its canon file if it names
// one and from the built-in table otherwise.
func (c *BibleTextConfig) Canon(table *canon.Table, t TranslationDefn) ([]canon.BookDefinition, error) {
	if t.CanonFile != "" {
		if err := table.LoadFile(t.Code, path.Join(c.DataDir, t.CanonFile)); err != nil {
			return nil, err
		}
		return table.Load(t.Code)
	}
	name := t.Canon
	if name == "" {
		name = t.Code
	}
	return table.Load(name)
}

// BuildRegistry builds the index of every configured translation. The
// default translation is registered first.
func (c *BibleTextConfig) BuildRegistry(table *canon.Table) (*bible.TranslationRegistry, error) {
	ordered := make([]TranslationDefn, 0, len(c.Translations))
	for _, t := range c.Translations {
		if strings.EqualFold(t.Code, c.DefaultTranslation) {
			ordered = append([]TranslationDefn{t}, ordered...)
		} else {
			ordered = append(ordered, t)
		}
	}

	reg, _ := bible.NewTranslationRegistry()
	for _, t := range ordered {
		defs, err := c.Canon(table, t)
		if err != nil {
			return nil, err
		}
		b, err := bible.New(bible.Info{
			Code:         t.Code,
			Name:         t.Name,
			Language:     t.Language,
			ChapterText:  t.ChapterText,
			PsalmText:    t.PsalmText,
			Introduction: c.readOptional(t.IntroductionFile),
			Preface:      c.readOptional(t.PrefaceFile),
			TitlePage:    c.readOptional(t.TitlePageFile),
		}, defs)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(b); err != nil {
			return nil, err
		}
		slog.Info("indexed translation", "code", b.Code(), "books", b.NumBooks(), "verses", b.NumVerses())
	}
	return reg, nil
}

// Translation returns the definition configured for code.
func (c *BibleTextConfig) Translation(code string) (TranslationDefn, bool) {
	for _, t := range c.Translations {
		if strings.EqualFold(t.Code, code) {
			return t, true
		}
	}
	return TranslationDefn{}, false
}
