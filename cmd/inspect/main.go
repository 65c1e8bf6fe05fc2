package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"

	"meet-lab/internal"
	"meet-lab/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

var kindColours = map[string]color.Color{
	"session":  color.FgGreen,
	"profile":  color.FgCyan,
	"remember": color.FgBlue,
	"chat":     color.FgYellow,
	"meeting":  color.FgMagenta,
}

func main() {
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	defaultPath := config.BadgerFilepath
	if defaultPath == "" {
		defaultPath = database.DefaultPath
	}

	dbPath := flag.String("db", defaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Only show keys starting with this prefix (chat_, meeting_, ...)")
	flag.Parse()

	// The server may hold the lock, so open read-only and bypass it.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	rows, err := internal.Collect(storage.NewBadgerStorage(db, logs.GetLoggerFromLevel(slog.LevelWarn)), *prefix, nil)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Size", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, row := range rows {
		kind := row.Kind
		if c, ok := kindColours[kind]; ok && config.Colours {
			kind = c.Render(kind)
		}
		table.Append([]string{row.Key, kind, strconv.Itoa(row.Size), row.Detail})
	}
	table.Render()
}
