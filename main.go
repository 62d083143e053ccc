package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/ian-bird/ish/lisp"
	lisptype "github.com/ian-bird/ish/lisp_type"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default ~/"+lisp.DefaultConfigName+")")
	expr := flag.String("e", "", "evaluate an expression, print the result and exit")
	debug := flag.Bool("debug", false, "trace evaluation to stderr")
	flag.Parse()

	cfg, err := lisp.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ish: %v\n", err)
		os.Exit(2)
	}
	level, _ := cfg.Level()
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	frame := lisp.NewTopLevelFrame()
	for _, fileName := range append(cfg.Preload, flag.Args()...) {
		if err := lisp.LoadFile(fileName, frame); err != nil {
			fmt.Fprintf(os.Stderr, "ish: %v\n", err)
			os.Exit(1)
		}
	}

	if *expr != "" {
		result, err := lisp.EvalString(*expr, frame)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(lisp.Print(result))
		return
	}
	if flag.NArg() > 0 {
		return
	}

	if err := repl(frame, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ish: %v\n", err)
		os.Exit(1)
	}
}

// runs the read loop on a liner terminal, keeping history between sessions
func repl(frame *lisptype.Frame, cfg lisp.Config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completer(frame))

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	err := lisp.Repl(frame, lisp.NewLinerReader(ln, cfg.ContinuationPrompt), os.Stdout, cfg.Prompt)
	fmt.Println()
	return err
}

// completes the word under the cursor against special forms and
// every name bound in the frame
func completer(frame *lisptype.Frame) liner.Completer {
	return func(line string) []string {
		start := strings.LastIndexAny(line, " \t()") + 1
		prefix, word := line[:start], line[start:]
		var out []string
		candidates := append(append([]string{}, lisp.SpecialForms...), frame.Names()...)
		for _, name := range candidates {
			if strings.HasPrefix(name, word) {
				out = append(out, prefix+name)
			}
		}
		return out
	}
}
