package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/folio/internal/db"
)

func main() {
	var pagesFile string
	var dbPath string
	var direction string
	flag.StringVar(&pagesFile, "file", "data/pages.json", "JSON page file path")
	flag.StringVar(&dbPath, "db", "data/folio.db", "sqlite db path")
	flag.StringVar(&direction, "to", "sqlite", "copy direction: sqlite (file -> db) or file (db -> file)")
	flag.Parse()

	fileBackend, err := db.OpenFile(pagesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open page file: %v\n", err)
		os.Exit(1)
	}

	gdb, err := db.Open(dbPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	sqliteBackend := db.NewSQLiteBackend(gdb)

	var src, dst db.Backend
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "sqlite":
		src, dst = fileBackend, sqliteBackend
	case "file":
		src, dst = sqliteBackend, fileBackend
	default:
		fmt.Fprintf(os.Stderr, "unknown direction %q\n", direction)
		os.Exit(2)
	}

	copied, err := db.CopyPages(context.Background(), src, dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "copy pages: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("done: copied %d pages\n", copied)
}
