// Command lumen is the entry point for the Lumen toolchain: it
// dispatches a single subcommand and, for serve, wires a demo route
// table into an httpd.Server.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"lumen.dev/go/lumen/httpd"
	"lumen.dev/go/lumen/internal/obs"
)

var errMissingCommand = errors.New("no command provided")

const usageText = `Lumen CLI

Usage:
    lumen <command>

Available commands:
    serve   Start the HTTP server (optional bind address, default 127.0.0.1:8080)
    build   Run the lightweight Lumen build pipeline
    help    Display this help text`

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errMissingCommand) {
			fmt.Fprintln(os.Stderr, "\n"+usageText)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 2 {
		return errMissingCommand
	}
	cmd, tail := args[1], args[2:]
	switch cmd {
	case "serve":
		return runServe(tail)
	case "build":
		return runBuild(tail, out)
	case "help", "--help", "-h":
		fmt.Fprintln(out, usageText)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runBuild(_ []string, out io.Writer) error {
	fmt.Fprintln(out, "Running Lumen build pipeline...")
	fmt.Fprintln(out, "  - preparing obs package")
	fmt.Fprintln(out, "  - preparing httpd package")
	fmt.Fprintln(out, "  - preparing cli package")
	fmt.Fprintln(out, "Done! Lumen is ready.")
	return nil
}

func runServe(tail []string) error {
	addr := "127.0.0.1:8080"
	if len(tail) > 0 {
		addr = tail[0]
	}

	r := httpd.NewRouter()
	r.Get("/", func(_ *httpd.Request) *httpd.Response {
		return httpd.HTML("<h1>Welcome to Lumen</h1>")
	}).Get("/health", func(_ *httpd.Request) *httpd.Response {
		return httpd.Text("OK")
	}).Head("/health", func(_ *httpd.Request) *httpd.Response {
		return httpd.Text("OK")
	}).Post("/echo", func(req *httpd.Request) *httpd.Response {
		return httpd.Text(string(req.Body))
	})

	s := &httpd.Server{
		Addr:   addr,
		Router: r,
		Logger: obs.StdLogger{L: log.Default(), Min: obs.Info, Prefix: "lumen "},
	}
	log.Printf("Lumen server running at http://%s", addr)
	return s.ListenAndServe()
}
