package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/avolkov/search-server/config"
	"github.com/avolkov/search-server/engine"
	"github.com/avolkov/search-server/internal/console"
)

func main() {
	var (
		help         = flag.Bool("help", false, "Show help message")
		version      = flag.Bool("version", false, "Show version information")
		settingsPath = flag.String("config", "", "Path to a YAML settings file")
		stats        = flag.Bool("stats", false, "Log per-query statistics on exit")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Search Server - an in-memory TF-IDF document index\n\n")
		fmt.Printf("Usage: %s [options] < input\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nInput protocol (stdin):\n")
		fmt.Printf("  <document count>\n")
		fmt.Printf("  for each document: one text line, then one ratings line \"<count> r1 r2 ...\"\n")
		fmt.Printf("  <query count>\n")
		fmt.Printf("  one query per line\n")
		fmt.Printf("  optionally: <match request count>, then one \"<document id> <query>\" per line\n")
		return
	}

	if *version {
		fmt.Printf("Search Server v1.0.0\n")
		return
	}

	settings := config.Default()
	if *settingsPath != "" {
		loaded, err := config.Load(*settingsPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = loaded
	}

	server, err := engine.NewWithStopWordList(settings.StopWords)
	if err != nil {
		log.Fatalf("Failed to create search server: %v", err)
	}

	if err := run(server, settings, console.NewReader(os.Stdin), os.Stdout); err != nil {
		log.Fatalf("%s: %v", settings.Name, err)
	}

	snapshot := server.Analytics()
	log.Printf("%s: served %d queries (%d hits, avg %v)", settings.Name, snapshot.TotalQueries, snapshot.TotalHits, snapshot.AverageTook)
	if *stats {
		for _, event := range server.AnalyticsEvents() {
			log.Printf("%s: query %s %q: %d hits in %v", settings.Name, event.QueryID, event.Query, event.Hits, event.Took)
		}
	}
}

// run executes one session of the stdin protocol: a document batch followed
// by a query batch and an optional match-request batch.
func run(server *engine.SearchServer, settings *config.Settings, reader *console.Reader, out io.Writer) error {
	documentCount, err := reader.ReadInt()
	if err != nil {
		return fmt.Errorf("reading document count: %w", err)
	}
	for docID := 0; docID < documentCount; docID++ {
		text, err := reader.ReadLine()
		if err != nil {
			return fmt.Errorf("reading document %d: %w", docID, err)
		}
		ratings, err := reader.ReadRatings()
		if err != nil {
			return fmt.Errorf("reading ratings for document %d: %w", docID, err)
		}
		if err := server.AddDocument(docID, text, settings.Status(), ratings); err != nil {
			return fmt.Errorf("adding document %d: %w", docID, err)
		}
	}

	queryCount, err := reader.ReadInt()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("reading query count: %w", err)
	}
	for i := 0; i < queryCount; i++ {
		query, err := reader.ReadLine()
		if err != nil {
			return fmt.Errorf("reading query %d: %w", i, err)
		}
		docs, err := server.FindTopDocuments(query)
		if err != nil {
			log.Printf("Warning: query %q rejected: %v", query, err)
			continue
		}
		for _, doc := range docs {
			fmt.Fprintln(out, console.FormatDocument(doc))
		}
	}

	matchCount, err := reader.ReadInt()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("reading match request count: %w", err)
	}
	for i := 0; i < matchCount; i++ {
		docID, query, err := reader.ReadMatchRequest()
		if err != nil {
			return fmt.Errorf("reading match request %d: %w", i, err)
		}
		matched, status, err := server.MatchDocument(query, docID)
		if err != nil {
			log.Printf("Warning: match request for document %d rejected: %v", docID, err)
			continue
		}
		fmt.Fprintln(out, console.FormatMatch(matched, status))
	}
	return nil
}
