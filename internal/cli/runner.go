package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoloop/internal/model"
	"github.com/idilsaglam/todoloop/internal/session"
	"github.com/idilsaglam/todoloop/internal/ui"
)

// Store is the persistence boundary the loop loads from and saves to.
type Store interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

// Options tune session behavior.
type Options struct {
	IDScheme session.IDScheme
	Now      func() time.Time // defaults to time.Now
}

// Runner drives the menu loop over one input stream.
type Runner struct {
	store Store
	in    *bufio.Reader
	p     *ui.Printer
	log   *log.Logger
	opt   Options
}

// NewRunner wires a Runner. in is read line by line; all console text goes to p.
func NewRunner(store Store, in io.Reader, p *ui.Printer, logger *log.Logger, opt Options) *Runner {
	return &Runner{
		store: store,
		in:    bufio.NewReader(in),
		p:     p,
		log:   logger,
		opt:   opt,
	}
}

// errExit signals that the user (or end of input) asked to leave the loop.
var errExit = errors.New("exit requested")

// Run loads the saved todos, serves the menu until the user quits and saves
// on the way out. Load and save failures are logged, not returned. The only
// error is a failure to read the console, in which case nothing is saved.
func (r *Runner) Run() error {
	r.p.Banner("🌟 Welcome to Todo! 🌟")

	items, err := r.store.Load()
	if err != nil {
		r.log.Warn("could not load todos, starting empty", "err", err)
		items = nil
	} else {
		r.log.Debug("loaded todos", "count", len(items))
	}

	opts := []session.Option{session.WithIDScheme(r.opt.IDScheme)}
	if r.opt.Now != nil {
		opts = append(opts, session.WithClock(r.opt.Now))
	}
	s := session.New(items, opts...)

	for {
		r.p.Menu(keys.menu())
		err := r.step(s)
		if errors.Is(err, errExit) {
			break
		}
		if err != nil {
			return err
		}
	}

	if err := r.store.Save(s.Items()); err != nil {
		r.log.Error("could not save todos", "err", err)
	} else {
		r.log.Debug("saved todos", "count", s.Len())
	}
	return nil
}

// step reads one menu choice and performs it.
func (r *Runner) step(s *session.State) error {
	line, err := r.readLine()
	if err != nil {
		return err
	}
	cmd := parseCommand(line)
	switch {
	case key.Matches(cmd, keys.Add):
		return r.add(s)
	case key.Matches(cmd, keys.List):
		r.list(s)
		return nil
	case key.Matches(cmd, keys.Remove):
		return r.remove(s)
	case key.Matches(cmd, keys.Quit):
		return errExit
	}
	r.p.Fail("Invalid choice, try again.")
	return nil
}

// readLine returns the next input line without its line ending. End of input
// maps to errExit; a final unterminated line is still returned first.
func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			r.p.Line("")
			return "", errExit
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Runner) add(s *session.State) error {
	r.p.Heading("Enter todo description:")
	line, err := r.readLine()
	if err != nil {
		return err
	}
	if _, err := s.Add(line); err != nil {
		if errors.Is(err, session.ErrEmptyDescription) {
			r.p.Fail("Description cannot be empty!")
			return nil
		}
		return err
	}
	r.p.OK("Todo added!")
	return nil
}

func (r *Runner) list(s *session.State) {
	r.p.Heading("Your Todos:")
	if s.Len() == 0 {
		r.p.Info("No todos yet! Add your first one! 🎉")
		return
	}
	done, pending := s.Stats()
	r.p.Line(r.p.Summary(done, pending) + "  " + r.p.Progress(done, done+pending))
	for line := range r.p.Lines(s.All()) {
		r.p.Line(line)
	}
}

func (r *Runner) remove(s *session.State) error {
	if s.Len() == 0 {
		r.p.Info("No todos to remove!")
		return nil
	}
	r.list(s)
	r.p.Heading("Enter the ID of the todo to remove:")
	line, err := r.readLine()
	if err != nil {
		return err
	}
	id, ok := parseID(line)
	if !ok {
		r.p.Fail("Please enter a valid number")
		return nil
	}
	if _, err := s.Remove(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			r.p.Fail("No todo found with that ID")
			return nil
		}
		return err
	}
	r.p.OK("Todo removed!")
	return nil
}

// parseID accepts a non-negative decimal integer.
func parseID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
