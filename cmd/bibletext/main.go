package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/config"
	"github.com/mahesh-hegde/bibletext/app/docstore"
	"github.com/mahesh-hegde/bibletext/app/passage"
	"github.com/mahesh-hegde/bibletext/app/reference"
	"github.com/mahesh-hegde/bibletext/app/scripture"
	"github.com/mahesh-hegde/bibletext/app/server"
	"github.com/mahesh-hegde/bibletext/app/versetext"
	"github.com/spf13/pflag"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "preprocess":
		runPreprocess()
	case "server":
		runServer()
	case "ref":
		runRef()
	case "passage":
		runPassage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: bibletext <command> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  preprocess    Convert an OSIS XML Bible to JSONL verse data")
	fmt.Fprintln(os.Stderr, "  server        Start the bibletext server")
	fmt.Fprintln(os.Stderr, "  ref           Parse references and print their canonical form")
	fmt.Fprintln(os.Stderr, "  passage       Print the text of a passage")
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, using INFO\n", level)
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// registry indexes the translations of dataDir, or the built-in canons when
// no data dir is given.
func registry(dataDir string) (*config.BibleTextConfig, *bible.TranslationRegistry, error) {
	table := canon.Builtin()
	if dataDir == "" {
		var bibles []*bible.Bible
		for _, code := range table.Translations() {
			defs, err := table.Load(code)
			if err != nil {
				return nil, nil, err
			}
			b, err := bible.New(bible.Info{Code: code, Name: code}, defs)
			if err != nil {
				return nil, nil, err
			}
			bibles = append(bibles, b)
		}
		reg, err := bible.NewTranslationRegistry(bibles...)
		return nil, reg, err
	}
	conf, err := config.ReadConfig(dataDir)
	if err != nil {
		return nil, nil, err
	}
	reg, err := conf.BuildRegistry(table)
	if err != nil {
		return nil, nil, err
	}
	return conf, reg, nil
}

func runPreprocess() {
	flags := pflag.NewFlagSet("preprocess", pflag.ExitOnError)
	var input, output, translation, dataDir, logLevel string
	flags.StringVarP(&input, "input", "i", "", "OSIS XML file (required)")
	flags.StringVarP(&output, "output", "o", "", "Output JSONL file (required)")
	flags.StringVarP(&translation, "translation", "t", "KJV", "Translation whose canon validates the verses")
	flags.StringVarP(&dataDir, "data-dir", "d", "", "data directory with config.json, for custom canons")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	flags.Parse(os.Args[2:])
	setupLogging(logLevel)

	if input == "" || output == "" {
		fmt.Fprintln(os.Stderr, "Error: --input and --output are required")
		os.Exit(1)
	}

	_, reg, err := registry(dataDir)
	if err != nil {
		fatal("error while indexing translations", err)
	}
	b, err := reg.Get(translation)
	if err != nil {
		fatal("unknown translation", err)
	}

	in, err := os.Open(input)
	if err != nil {
		fatal("error while opening input", err)
	}
	defer in.Close()
	out, err := os.Create(output)
	if err != nil {
		fatal("error while creating output", err)
	}
	defer out.Close()

	n, err := versetext.ConvertOSIS(in, out, b)
	if err != nil {
		fatal("error when converting OSIS", err)
	}
	slog.Info("converted OSIS", "verses", n, "translation", b.Code(), "output", output)
}

// openServices opens the stores of dataDir and wires the services over them.
func openServices(dataDir, store string) (*config.BibleTextConfig, *docstore.DocStore, *versetext.Service, *scripture.Service) {
	conf, reg, err := registry(dataDir)
	if err != nil {
		fatal("error while reading configuration", err)
	}
	if store != "" {
		conf.Store = store
	}
	ds, err := docstore.InitStore(conf.Store, dataDir, conf, reg)
	if err != nil {
		fatal("error while initializing store", err)
	}

	var verses versetext.Store = ds.Verses
	if conf.CacheTTLSeconds > 0 {
		verses = versetext.NewCachedStore(verses, time.Duration(conf.CacheTTLSeconds)*time.Second)
	}
	resolver := passage.NewResolver(reg, reference.NewParser(reg))
	verseService := versetext.NewService(verses, resolver)

	scriptureStore := scripture.NewSQLiteStore(ds.DB)
	if err := scriptureStore.Init(); err != nil {
		ds.Close()
		fatal("error while initializing quotation store", err)
	}
	return conf, ds, verseService, scripture.NewService(scriptureStore, verseService)
}

func runServer() {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	var address, dataDir, store, logLevel string
	var port int
	flags.StringVarP(&address, "address", "a", "localhost", "Server address to bind")
	flags.IntVarP(&port, "port", "p", 8080, "Server port to bind")
	flags.StringVarP(&dataDir, "data-dir", "d", "",
		"data directory to read config.json and data JSONL files")
	flags.StringVar(&store, "store", "", "verse store, sqlite or bleve; overrides config.json")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	flags.Parse(os.Args[2:])
	setupLogging(logLevel)

	if dataDir == "" {
		slog.Error("--data-dir not provided, stopping")
		os.Exit(1)
	}

	serverConf, err := config.ReadServerRuntimeConfig()
	if err != nil {
		fatal("error while reading environment", err)
	}
	if flags.Changed("address") || os.Getenv("BIBLETEXT_ADDR") == "" {
		serverConf.Addr = address
	}
	if flags.Changed("port") || os.Getenv("BIBLETEXT_PORT") == "" {
		serverConf.Port = port
	}

	conf, ds, verses, scriptures := openServices(dataDir, store)
	defer ds.Close()

	controller := server.NewBibleTextController(verses, scriptures, conf)
	server.StartServer(controller, conf, serverConf)
}

func runRef() {
	flags := pflag.NewFlagSet("ref", pflag.ExitOnError)
	var translation, dataDir, logLevel string
	flags.StringVarP(&translation, "translation", "t", "", "Translation code, the default when empty")
	flags.StringVarP(&dataDir, "data-dir", "d", "", "data directory with config.json; built-in canons when empty")
	flags.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	flags.Parse(os.Args[2:])
	setupLogging(logLevel)

	if flags.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bibletext ref [options] <reference>...")
		os.Exit(1)
	}

	_, reg, err := registry(dataDir)
	if err != nil {
		fatal("error while indexing translations", err)
	}
	resolver := passage.NewResolver(reg, reference.NewParser(reg))

	failed := false
	for _, text := range flags.Args() {
		start, _, err := resolver.Parser().ParseRange(text, translation)
		if err != nil {
			fmt.Printf("%s\terror: %v\n", text, err)
			failed = true
			continue
		}
		p, err := resolver.ResolveRange(text, translation)
		if err != nil {
			fmt.Printf("%s\terror: %v\n", text, err)
			failed = true
			continue
		}
		fmt.Printf("%s\t%s\t%s\t%s\t%d-%d\n", text, p, p.Bible().Code(), start.Scope, p.StartOrdinal(), p.EndOrdinal())
	}
	if failed {
		os.Exit(1)
	}
}

func runPassage() {
	flags := pflag.NewFlagSet("passage", pflag.ExitOnError)
	var translation, dataDir, logLevel string
	flags.StringVarP(&translation, "translation", "t", "", "Translation code, the default when empty")
	flags.StringVarP(&dataDir, "data-dir", "d", "", "data directory to read config.json and data JSONL files")
	flags.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	flags.Parse(os.Args[2:])
	setupLogging(logLevel)

	if dataDir == "" || flags.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bibletext passage --data-dir <dir> [options] <reference>")
		os.Exit(1)
	}

	_, ds, verses, _ := openServices(dataDir, "")
	defer ds.Close()

	pd, err := verses.Lookup(context.Background(), strings.Join(flags.Args(), " "), translation)
	if err != nil {
		ds.Close()
		fatal("lookup failed", err)
	}
	fmt.Printf("%s (%s)\n", pd.Passage, pd.Passage.Bible().Code())
	for _, v := range pd.Verses {
		fmt.Printf("%d:%d\t%s\n", v.Chapter, v.Verse, v.Text)
	}
}
