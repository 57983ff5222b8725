package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/minifs/fs/alloc"
	"github.com/joshuapare/minifs/fs/dir"
	"github.com/joshuapare/minifs/internal/format"
	"github.com/joshuapare/minifs/internal/logger"
)

const (
	// Prompt is printed after every completed command.
	Prompt = "> "

	// Farewell is printed by END.
	Farewell = "Stopping the CPU. Bye!"

	// PageProbeSize is the size of the PAGE diagnostic allocation.
	PageProbeSize = 1000

	helpLine = "Commands: LIST | CREATE <name> <size> | RENAME <old> <new> | DEL <name> | PAGE | END"
)

// Options configures a Shell.
type Options struct {
	// Banner prints the startup banner and initial listing on Start.
	Banner bool
	// Echo writes each input line back after the prompt, for transcripts of
	// non-interactive input.
	Echo   bool
	Logger *slog.Logger
}

// Shell dispatches protocol lines to a Directory. It is not safe for
// concurrent use.
type Shell struct {
	dir    *dir.Directory
	alloc  dir.Allocator
	out    io.Writer
	opts   Options
	log    *slog.Logger
	halted bool
	err    error
}

// New creates a Shell writing replies to out. a serves the PAGE probe and is
// normally the same allocator the directory was built on.
func New(d *dir.Directory, a dir.Allocator, out io.Writer, opts Options) *Shell {
	return &Shell{
		dir:   d,
		alloc: a,
		out:   out,
		opts:  opts,
		log:   logger.OrDiscard(opts.Logger),
	}
}

// Halted reports whether END has been processed.
func (s *Shell) Halted() bool {
	return s.halted
}

// Err returns the first error from writing to the output.
func (s *Shell) Err() error {
	return s.err
}

// Start prints the banner (when enabled) followed by the first prompt.
func (s *Shell) Start() {
	if s.opts.Banner {
		t := s.dir.Table()
		s.printf("FS init. dir@%s phys@%s\n", format.Hex(t.Logical), format.Hex(t.Physical))
		s.print("Mini-OS ready.\n")
		s.print(helpLine + "\n\n")
		s.list()
		s.print("\n")
	}
	s.print(Prompt)
}

// Exec processes one input line and prints its reply. It returns false once
// the shell has halted; lines after END are ignored.
func (s *Shell) Exec(line string) bool {
	if s.halted {
		return false
	}
	if s.opts.Echo {
		s.print(line + "\n")
	}

	norm := Normalize(line)
	switch norm {
	case "END":
		s.print(Farewell + "\n")
		s.halted = true
		s.log.Info("shell halted")
		return false
	case "PAGE":
		s.page()
		s.print(Prompt)
		return true
	}

	cmd, ok := Parse(norm)
	if !ok {
		s.print(Prompt)
		return true
	}

	switch cmd.Name {
	case "LIST":
		s.list()
	case "CREATE":
		s.create(cmd.Arg1, cmd.Arg2)
	case "RENAME":
		s.rename(cmd.Arg1, cmd.Arg2)
	case "DEL":
		s.del(cmd.Arg1)
	default:
		s.print("Unknown command\n")
	}
	s.print(Prompt)
	return true
}

// Run starts the shell and executes lines from in until END, end of input,
// or ctx is done. Reaching END or end of input is not an error; a done ctx
// returns ctx.Err() without waiting for the pending read. The reading
// goroutine exits once in yields a line or EOF.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.Start()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("shell: read input: %w", err)
			}
			return s.err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Exec(line) || s.err != nil {
			return s.err
		}
	}
}

func (s *Shell) list() {
	s.print("FILES:\n")
	for r := range s.dir.List() {
		s.printf("  %s  size=%sB alloc=%sB v@%s p@%s\n",
			r.Name, format.Dec(r.Size), format.Dec(r.Alloc), format.Hex(r.Logical), format.Hex(r.Physical))
	}
}

func (s *Shell) create(name, sizeText string) {
	if name == "" || sizeText == "" {
		s.print("usage: CREATE <name> <size>\n")
		return
	}
	_, err := s.dir.Create(name, format.ParseDec(sizeText))
	s.reply("create", err)
}

func (s *Shell) rename(oldName, newName string) {
	if oldName == "" || newName == "" {
		s.print("usage: RENAME <old> <new>\n")
		return
	}
	s.reply("rename", s.dir.Rename(oldName, newName))
}

func (s *Shell) del(name string) {
	if name == "" {
		s.print("usage: DEL <name>\n")
		return
	}
	s.reply("del", s.dir.Delete(name))
}

func (s *Shell) page() {
	r, err := s.alloc.Allocate(PageProbeSize, true)
	if err != nil {
		s.reply("page", err)
		return
	}
	s.printf("Page: %s, physical address: %s\n", format.Hex(r.Logical), format.Hex(r.Physical))
}

// reply prints OK or the protocol reason for err.
func (s *Shell) reply(op string, err error) {
	if err == nil {
		s.print("OK\n")
		return
	}
	s.log.Debug("command failed", "op", op, "err", err)
	s.print("ERR: " + reason(err) + "\n")
}

func reason(err error) string {
	switch {
	case errors.Is(err, dir.ErrNameTooLong):
		return "name too long"
	case errors.Is(err, dir.ErrExists):
		return "exists"
	case errors.Is(err, dir.ErrZeroSize):
		return "size must be > 0"
	case errors.Is(err, dir.ErrFull):
		return "directory full"
	case errors.Is(err, dir.ErrNotFound):
		return "not found"
	case errors.Is(err, alloc.ErrAllocFailed):
		return "allocation failed"
	default:
		return err.Error()
	}
}

func (s *Shell) print(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.out, text)
}

func (s *Shell) printf(layout string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, layout, args...)
}
