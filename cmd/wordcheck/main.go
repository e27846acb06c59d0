/*
Package main implements the wordcheck spell checker CLI and IPC server.

WordCheck loads a word list into a trie and reports misspelled words in
files or stdin with ranked suggestions. Suggestions come from a bounded
edit distance search over the trie, then words sharing the first letters,
then common phonetic rewrites (ph/f, c/k, z/s, i/y).

# Usage

Check a file:

	wordcheck document.txt
	wordcheck -f document.txt -dict custom-dict.txt -o report.txt -s 3

Check text from stdin:

	echo "helo wrold" | wordcheck

Check lines interactively:

	wordcheck -c

Serve msgpack requests on stdin/stdout for editor integration:

	wordcheck -server

Serve the same checks as MCP tools for agents:

	wordcheck -mcp

# Dictionary

The dictionary is a text file with one word per line; blank lines and lines
starting with # are skipped. It is looked up in order at the -dict path,
data/dictionary.txt next to the binary, dictionary.txt and
data/dictionary.txt in the working dir, then the system word lists. When
none exists a small built-in list is used.

# Configuration

Defaults are read from config.toml in the user config dir, created on first
run. Flags that are set explicitly override the file:

	[checker]
	max_suggestions = 5
	max_distance = 2
	include_prefix_suggestions = true
	ignore_common_words = true
	custom_ignore_words = []

	[dict]
	path = ""
	fallback_builtin = true

	[server]
	max_word_length = 60
	max_text_length = 65536

	[cli]
	max_line_length = 4096
	show_correct = false
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/report"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/bastiangx/wordcheck/pkg/tools"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	Version = "1.0.0"
	AppName = "wordcheck"
	gh      = "https://github.com/bastiangx/wordcheck"
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

// main only manages the flow; checking, serving and reporting live in their packages.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	file := flag.String("f", "", "File to check for spelling errors")
	flag.StringVar(file, "file", "", "File to check for spelling errors")
	dictPath := flag.String("dict", "", "Dictionary file path")
	output := flag.String("o", "", "Output report file path")
	maxSuggestions := flag.Int("s", defaults.Checker.MaxSuggestions, "Maximum number of suggestions")
	maxDistance := flag.Int("m", defaults.Checker.MaxDistance, "Maximum edit distance for suggestions")
	ignoreCommon := flag.Bool("ignore-common", defaults.Checker.IgnoreCommonWords, "Ignore common words")
	noPrefix := flag.Bool("no-prefix", !defaults.Checker.IncludePrefixSuggestions, "Disable prefix suggestions")
	cliMode := flag.Bool("c", false, "Check lines interactively")
	serverMode := flag.Bool("server", false, "Serve msgpack requests on stdin/stdout")
	mcpMode := flag.Bool("mcp", false, "Serve spellcheck tools over MCP on stdin/stdout")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	rebuildConfig := flag.Bool("rebuild-config", false, "Rewrite the default config.toml and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *rebuildConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		path, _ := config.GetDefaultConfigPath()
		log.Printf("Config rebuilt at: %s", path)
		os.Exit(0)
	}

	if *file == "" && flag.NArg() > 0 {
		*file = flag.Arg(0)
	}

	appConfig, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedConfig))

	// only flags given on the cmd line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s":
			appConfig.Checker.MaxSuggestions = *maxSuggestions
		case "m":
			appConfig.Checker.MaxDistance = *maxDistance
		case "ignore-common":
			appConfig.Checker.IgnoreCommonWords = *ignoreCommon
		case "no-prefix":
			appConfig.Checker.IncludePrefixSuggestions = !*noPrefix
		case "dict":
			appConfig.Dict.Path = *dictPath
		}
	})

	checker := spell.New(appConfig.CheckerOptions())
	dictSource := loadDictionary(checker, appConfig.Dict)

	if *serverMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(checker, appConfig, os.Stdin, os.Stdout)
		showStartupInfo(dictSource, checker.Stats()["totalWords"])
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if *mcpMode {
		log.Debug("serving MCP tools on stdio")
		if err := mcpserver.ServeStdio(tools.NewServer(checker, Version)); err != nil {
			log.Fatalf("MCP server error: %v", err)
		}
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(checker, os.Stdin, os.Stdout, appConfig.CLI.MaxLineLength, appConfig.CLI.ShowCorrect)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	var results []spell.Result
	if *file != "" {
		log.Infof("checking file: %s", *file)
		results, err = checker.CheckFile(*file)
	} else {
		log.Info("enter text to check (Ctrl+D to finish)")
		results, err = checker.CheckReader(os.Stdin)
	}
	if err != nil {
		log.Fatalf("Check failed: %v", err)
	}

	if err := report.Print(os.Stdout, results); err != nil {
		log.Fatalf("Failed to print results: %v", err)
	}

	if *output != "" {
		if err := report.Save(*output, report.Generate(results, time.Now())); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("report saved to: %s", utils.GetAbsolutePath(*output))
	}
}

// loadDictionary finds and loads the word list, falling back to the builtin
// list when allowed. Returns a label for where the words came from.
func loadDictionary(checker *spell.Checker, cfg config.DictConfig) string {
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}

	if pathResolver != nil {
		if path, ok := pathResolver.FindDictionary(cfg.Path); ok {
			if cfg.Path != "" && path != cfg.Path {
				log.Warnf("dictionary not found at %s, using %s", cfg.Path, path)
			}
			err := checker.LoadDictionaryFile(path)
			if err == nil {
				log.Debugf("dictionary loaded from %s", utils.GetAbsolutePath(path))
				return path
			}
			log.Warnf("%v", err)
		}
	}

	if !cfg.FallbackBuiltin {
		log.Fatal("No usable dictionary found and builtin fallback is disabled")
	}
	log.Warn("using minimal built-in dictionary")
	checker.LoadDictionary(dictionary.Builtin())
	return "builtin"
}

// printVersion shows a small styled banner
func printVersion() {
	banner := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordCheck ] Trie backed spell checking")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictSource string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Info("===========")
	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s ), %d words", dictSource, words)
	log.Info("status: ready")
	log.Info("===========")

	log.SetLevel(currentLevel)
}
