// Package commands turns text command lines into calls on the blog engine.
//
// Grammar, one command per line (double quotes group words into one field):
//
//	post    <blog> <user> <title> <body> <tags> <timestamp>
//	comment <blog> <permalink> <user> <body> <timestamp>
//	delete  <blog> <permalink> <user> <timestamp>
//	show    <blog>
//	find    <blog> <search>
//
// Blank lines and lines starting with # are ignored.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"blogshell/app/models"
)

// Engine is the set of operations a command line can invoke.
type Engine interface {
	Post(blogName, userName, title, body, tagsCSV, timestamp string) (*models.Post, error)
	Comment(blogName, parentPermalink, userName, body, timestamp string) (*models.Comment, error)
	Delete(blogName, permalink, userName, timestamp string) error
	Show(blogName string) (string, error)
	Find(blogName, search string) (string, error)
}

// arity is the number of arguments following each keyword
var arity = map[string]int{
	"post":    6,
	"comment": 5,
	"delete":  4,
	"show":    1,
	"find":    2,
}

// Summary counts the outcome of a Run. Blank and comment lines count as executed.
type Summary struct {
	Executed int
	Failed   int
}

// Runner executes command lines against an Engine, writing show and find
// transcripts to out.
type Runner struct {
	engine Engine
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

// NewRunner creates a Runner. errOut receives one line per failed command.
func NewRunner(engine Engine, out, errOut io.Writer) *Runner {
	return &Runner{
		engine: engine,
		out:    out,
		errOut: errOut,
		logger: slog.Default(),
	}
}

// WithLogger replaces the runner logger
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	r.logger = logger
	return r
}

// Parse tokenizes line and checks the keyword and argument count. It returns a nil
// slice for blank and comment lines.
func Parse(line string) ([]string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	fields, err := Tokenize(trimmed)
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(fields[0])
	want, ok := arity[keyword]
	if !ok {
		return nil, &MalformedCommandError{Line: line, Reason: "unknown command " + fields[0]}
	}
	if got := len(fields) - 1; got != want {
		return nil, &MalformedCommandError{
			Line:   line,
			Reason: fmt.Sprintf("%s expects %d arguments, got %d", keyword, want, got),
		}
	}
	fields[0] = keyword
	return fields, nil
}

// Execute runs a single command line.
func (r *Runner) Execute(line string) error {
	fields, err := Parse(line)
	if err != nil || fields == nil {
		return err
	}

	args := fields[1:]
	switch fields[0] {
	case "post":
		_, err = r.engine.Post(args[0], args[1], args[2], args[3], args[4], args[5])
	case "comment":
		_, err = r.engine.Comment(args[0], args[1], args[2], args[3], args[4])
	case "delete":
		err = r.engine.Delete(args[0], args[1], args[2], args[3])
	case "show":
		err = r.write(r.engine.Show(args[0]))
	case "find":
		err = r.write(r.engine.Find(args[0], args[1]))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fields[0], err)
	}
	return nil
}

func (r *Runner) write(transcript string, err error) error {
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, transcript)
	return err
}

// Run executes every line read from in. A failing command is reported and the
// remaining lines still run; only read errors abort the run.
func (r *Runner) Run(in io.Reader) (Summary, error) {
	var summary Summary
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if err := r.Execute(line); err != nil {
			summary.Failed++
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
			r.logger.Warn("command failed", "line", lineNo, "error", err)
			continue
		}
		summary.Executed++
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read commands: %w", err)
	}
	return summary, nil
}
