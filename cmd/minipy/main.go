package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"minipy/mini"
)

const version = "0.1.0"

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return runREPL()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return runREPL()
	case "version", "-v", "--version":
		fmt.Println("minipy v" + version)
		return nil
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "only tokenize and parse the script without executing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("minipy run: script path required")
	}
	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	source := string(input)

	if *checkOnly {
		tokens, err := mini.Tokenize(source)
		if err != nil {
			return err
		}
		_, err = mini.Parse(tokens)
		return err
	}

	interp := mini.NewInterpreter(mini.Config{})
	return interp.Run(source)
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [command]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [flags] <script>   execute a script file")
	fmt.Fprintln(os.Stderr, "  repl                   start an interactive session (default)")
	fmt.Fprintln(os.Stderr, "  version                print the interpreter version")
	fmt.Fprintln(os.Stderr, "  help                   show this message")
	fmt.Fprintln(os.Stderr, "Run flags:")
	fmt.Fprintln(os.Stderr, "  -check")
	fmt.Fprintln(os.Stderr, "    only tokenize and parse the script without executing")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
