package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fortio.org/log"
	"golang.org/x/term"

	"github.com/ironsheep/colorpeek/internal/httpapi"
	"github.com/ironsheep/colorpeek/internal/server"
	"github.com/ironsheep/colorpeek/internal/service"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	defaultAddr     = ":8000"
	defaultMaxConns = 256
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if lvl := os.Getenv("COLORPEEK_LOG_LEVEL"); lvl != "" {
		if err := log.SetLogLevelStr(lvl); err != nil {
			log.Warnf("Ignoring COLORPEEK_LOG_LEVEL=%q: %v", lvl, err)
		}
	}

	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "colorpeek %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "serve":
		return serve()
	case "mcp":
		log.Infof("colorpeek MCP server %s (built %s, commit %s)", Version, BuildTime, GitCommit)
		if err := server.New(Version).Run(); err != nil {
			log.Errf("Server error: %v", err)
			return 1
		}
		return 0
	case "describe":
		if len(args) < 2 {
			fmt.Fprintln(stdout, "usage: colorpeek describe <color>...")
			return 2
		}
		return describe(args[1:], stdout, isTerminal(stdout))
	default:
		fmt.Fprintf(stdout, "unknown command %q\n\n", cmd)
		printUsage(stdout)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "colorpeek - color conversion and preview server")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: colorpeek [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve               Run the HTTP API (default)")
	fmt.Fprintln(w, "  mcp                 Run the MCP server on stdin/stdout")
	fmt.Fprintln(w, "  describe <color>... Print the color report for each color")
	fmt.Fprintln(w, "  --version, -v       Print version information")
	fmt.Fprintln(w, "  --help, -h          Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  COLORPEEK_ADDR=%s        Listen address for serve\n", defaultAddr)
	fmt.Fprintf(w, "  COLORPEEK_MAX_CONNS=%d    Concurrent connection cap for serve\n", defaultMaxConns)
	fmt.Fprintln(w, "  COLORPEEK_LOG_LEVEL=debug    Log level (debug, verbose, info, warning, error)")
}

func serve() int {
	cfg := httpapi.Config{
		Addr:            defaultAddr,
		MaxConns:        defaultMaxConns,
		ShutdownTimeout: 5 * time.Second,
	}
	if addr := os.Getenv("COLORPEEK_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if v := os.Getenv("COLORPEEK_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Errf("Invalid COLORPEEK_MAX_CONNS=%q", v)
			return 2
		}
		cfg.MaxConns = n
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("colorpeek %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	if err := httpapi.ListenAndServe(ctx, cfg); err != nil {
		log.Errf("Server error: %v", err)
		return 1
	}
	log.Infof("colorpeek stopped")
	return 0
}

// describe prints one report per token. Reports are indented for a
// terminal and one per line otherwise.
func describe(tokens []string, w io.Writer, pretty bool) int {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	status := 0
	for _, tok := range tokens {
		report, err := service.DescribeColor(tok)
		if err != nil {
			log.Errf("%q: %v", tok, err)
			status = 1
			continue
		}
		if err := enc.Encode(report); err != nil {
			log.Errf("write report: %v", err)
			return 1
		}
	}
	return status
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
