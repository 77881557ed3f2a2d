// Copyright 2025 The Typeahead Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the type-ahead suggestion server and CLI application.

Typeahead serves frequency-ranked query suggestions from a character trie
that matches both prefixes and substrings of everything typed so far. It can
operate as a MessagePack IPC server for integration with UIs, or as a CLI
application with a per-keystroke interactive mode.

# Usage

Start the server with default settings:

	typeahead -vocab queries.csv

Run in CLI mode, re-querying on every keystroke:

	typeahead -vocab queries.csv -c -raw

The vocabulary file holds one query term per line; a trailing ",count"
integer repeats the insert so term frequencies survive a rebuild.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_limit = 5
	min_query = 1
	max_query = 60

	[vocab]
	path = "queries.csv"
	cache_size = 256

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a
suggestion request:

	{"id": "req1", "action": "suggest", "q": "ca", "l": 5}

Receive ranked suggestions with timing information:

	{"id": "req1", "s": [{"w": "cat", "r": 1, "f": 2}], "c": 1, "t": 145}

Frequency lookups, vocabulary additions, stats and health checks are
described in the server package documentation.

# Command Line Flags

The following flags control application behavior:

	-vocab string
	    Path to the vocabulary file (overrides config)
	-config string
	    Path to a custom config.toml
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-raw
	    Per-keystroke interactive mode (CLI mode only)
	-limit int
	    Number of suggestions to return (default from config)
	-qmin int
	    Minimum query length for suggestions
	-qmax int
	    Maximum query length for suggestions
	-no-filter
	    Disable input filtering for debugging
	-entries int
	    Maximum vocabulary entries to load (0 for all)
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/typeahead/internal/cli"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/server"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/bastiangx/typeahead/pkg/vocab"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "typeahead"
	gh      = "https://github.com/bastiangx/typeahead"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	vocabPath := flag.String("vocab", "", "Path to the vocabulary file (overrides config)")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and everyday use")
	rawMode := flag.Bool("raw", defaults.CLI.RawMode, "Per-keystroke interactive mode (CLI mode only)")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return")
	minQuery := flag.Int("qmin", defaults.CLI.DefaultMinLen, "Minimum query length for suggestions (1 < n <= qmax)")
	maxQuery := flag.Int("qmax", defaults.CLI.DefaultMaxLen, "Maximum query length for suggestions")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - queries all raw input (numbers, symbols, etc)")
	maxEntries := flag.Int("entries", defaults.Vocab.MaxEntries, "Maximum number of vocabulary entries to load (use 0 for all)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ Typeahead ] Incremental query suggestions, ranked by frequency!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	path := appConfig.Vocab.Path
	if *vocabPath != "" {
		path = *vocabPath
	}

	suggester := suggest.NewCachedSuggester(appConfig.Vocab.CacheSize)

	if path != "" {
		loader := vocab.NewLoader(path, *maxEntries)
		stats, err := loader.Load(suggester)
		if err != nil {
			log.Fatalf("Failed to load vocabulary: %v", err)
			os.Exit(1)
		}
		log.Debugf("Vocabulary ready: %d inserts from %d lines", stats.Inserted, stats.Lines)
	} else {
		log.Warn("No vocabulary file specified, starting with an empty index...")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minQuery", *minQuery,
			"maxQuery", *maxQuery,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(suggester, *minQuery, *maxQuery, *limit, *noFilter)
		if *rawMode {
			err = inputHandler.StartRaw()
		} else {
			err = inputHandler.Start()
		}
		if err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(suggester, appConfig)

	showStartupInfo(path, suggester)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(vocabPath string, suggester suggest.ISuggester) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := suggester.Stats()

	println("===========")
	println(" Typeahead ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("vocabulary: ( %s )", vocabPath)
	log.Infof("distinct words: [ %d ]", stats["distinctWords"])
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
