/*
File    : glox/cmd/glox/main.go
Package : main
*/

// Command glox is the interpreter's driver: zero arguments starts an
// interactive REPL, one path argument runs a source file, and
// `serve <port>` starts a TCP REPL server, one goroutine per connection
// (grounded on the teacher's main/main.go startServer/handleClient).
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/glox-lang/glox/config"
	"github.com/glox-lang/glox/diagnostics"
	"github.com/glox-lang/glox/interpreter"
	"github.com/glox-lang/glox/parser"
	"github.com/glox-lang/glox/repl"
	"github.com/glox-lang/glox/resolver"
	"github.com/glox-lang/glox/scanner"
)

const (
	exitOK      = 0
	exitStatic  = 65
	exitRuntime = 70
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "serve":
			if len(args) < 2 {
				fmt.Fprintln(os.Stderr, "usage: glox serve <port>")
				os.Exit(exitStatic)
			}
			startServer(args[1])
			return
		}
	}

	cfg, err := config.Load(".glox.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "glox: reading .glox.yaml: %v\n", err)
		os.Exit(exitStatic)
	}

	switch len(args) {
	case 0:
		r := repl.New(cfg, os.Stdout)
		if err := r.Start(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "glox: %v\n", err)
			os.Exit(exitRuntime)
		}
	case 1:
		os.Exit(runFile(args[0], cfg.ColorEnabled))
	default:
		fmt.Fprintln(os.Stderr, "usage: glox [path] | glox serve <port>")
		os.Exit(exitStatic)
	}
}

func showHelp() {
	color.New(color.FgCyan).Println("glox — a tree-walking Lox-family interpreter")
	fmt.Println("usage:")
	fmt.Println("  glox                run the interactive REPL")
	fmt.Println("  glox <path>         run a source file")
	fmt.Println("  glox serve <port>   run a TCP REPL server")
	fmt.Println("  glox --version      print the version")
	fmt.Println("  glox --help         print this message")
}

func showVersion() {
	cfg := config.Default()
	color.New(color.FgYellow).Printf("glox %s\n", cfg.Version)
}

// runFile scans, parses, resolves, and evaluates a source file, returning
// the process exit code: 0 on success, 65 on any static error, 70 on a
// runtime error.
func runFile(path string, colorEnabled bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glox: %v\n", err)
		return exitStatic
	}

	sink := diagnostics.New(os.Stdout, colorEnabled)

	sc := scanner.New(string(source), sink)
	tokens := sc.ScanTokens()

	p := parser.New(tokens, sink)
	statements := p.Parse()

	if sink.HadError() {
		return exitStatic
	}

	res := resolver.New(sink)
	distances := res.Resolve(statements)

	if sink.HadError() {
		return exitStatic
	}

	interp := interpreter.New(sink, os.Stdout)
	if err := interp.Run(statements, distances); err != nil {
		return exitRuntime
	}
	if sink.HadRuntimeError() {
		return exitRuntime
	}
	return exitOK
}

// startServer listens on port and hands each accepted connection its own
// REPL bound to the connection as both reader and writer, mirroring the
// teacher's server mode one goroutine per client.
func startServer(port string) {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glox: listen: %v\n", err)
		os.Exit(exitRuntime)
	}
	fmt.Printf("glox: listening on :%s\n", port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			fmt.Fprintf(os.Stderr, "glox: accept: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cfg := config.Default()
	r := repl.New(cfg, conn)
	r.Start(conn, conn)
}
