// Package assistant is the console front end of the address book and the notes book. It parses
// one line per command, dispatches it to the collections, renders the result and saves every
// collection that a command changed.
package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gitlab.com/dirk.krummacker/assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/assistant/internal/notesbook"
)

const (
	// DefaultPrompt is shown before every command.
	DefaultPrompt = "Enter a command: "

	// DefaultSuggestionThreshold is the minimum similarity in percent for a command suggestion.
	DefaultSuggestionThreshold = 60

	welcomeMessage  = "Welcome to the assistant bot! Type 'help' to list the commands."
	goodbyeMessage  = "Good bye!"
	invalidCommand  = "Invalid command."
	suggestionTempl = "Did you mean '%s'? (similarity: %d%%)"
)

// Persister saves the collections. It is implemented by storage.Repository.
type Persister interface {
	SaveContacts(ctx context.Context, book *addressbook.AddressBook) error
	SaveNotes(ctx context.Context, book *notesbook.NotesBook) error
}

// target tells which collection a command changes.
type target int

const (
	readOnly target = iota
	contactsTarget
	notesTarget
)

// String returns the name of the collection used in log entries.
func (t target) String() string {
	switch t {
	case contactsTarget:
		return "contacts"
	case notesTarget:
		return "notes"
	default:
		return "none"
	}
}

// handler executes a command with the text that followed the command word.
type handler func(a *Assistant, rest string) (string, error)

// command is one entry of the command table.
type command struct {
	names       []string
	usage       string
	description string
	group       string
	changes     target
	exit        bool
	run         handler
}

// Options configures an Assistant. Zero values select the defaults.
type Options struct {
	Prompt              string
	SuggestionThreshold int
	NoColor             bool
	Logger              *zerolog.Logger
}

// Assistant holds the collections and the command table.
type Assistant struct {
	contacts  *addressbook.AddressBook
	notes     *notesbook.NotesBook
	store     Persister
	log       zerolog.Logger
	prompt    string
	threshold int

	header *color.Color
	alert  *color.Color

	commands []*command
	byName   map[string]*command
}

// New creates an assistant for the collections. Changed collections are saved through store.
func New(contacts *addressbook.AddressBook, notes *notesbook.NotesBook, store Persister, opts Options) *Assistant {
	a := &Assistant{
		contacts:  contacts,
		notes:     notes,
		store:     store,
		log:       zerolog.Nop(),
		prompt:    opts.Prompt,
		threshold: opts.SuggestionThreshold,
		header:    color.New(color.FgCyan, color.Bold),
		alert:     color.New(color.FgYellow),
		byName:    make(map[string]*command),
	}
	if opts.Logger != nil {
		a.log = *opts.Logger
	}
	if a.prompt == "" {
		a.prompt = DefaultPrompt
	}
	if a.threshold == 0 {
		a.threshold = DefaultSuggestionThreshold
	}
	if opts.NoColor {
		a.header.DisableColor()
		a.alert.DisableColor()
	}
	a.registerCommands()
	return a
}

// register adds the command to the table under all of its names.
func (a *Assistant) register(c *command) {
	a.commands = append(a.commands, c)
	for _, name := range c.names {
		a.byName[name] = c
	}
}

// commandNames returns all names that the assistant understands, in the order of the help table.
func (a *Assistant) commandNames() []string {
	var names []string
	for _, c := range a.commands {
		names = append(names, c.names...)
	}
	return names
}

// Execute runs one line of input. It returns the text to show and whether the user asked to quit.
// Failures are returned as text; the assistant keeps running after them.
func (a *Assistant) Execute(ctx context.Context, line string) (string, bool) {
	name, rest := ParseInput(line)
	if name == "" {
		return "", false
	}
	c, found := a.byName[name]
	if !found {
		a.log.Debug().Str("command", name).Msg("unknown command")
		return a.unknownCommand(name), false
	}

	a.log.Debug().Str("command", name).Msg("executing command")
	output, err := c.run(a, rest)
	if err != nil {
		a.log.Warn().Err(err).Str("command", name).Msg("command failed")
		return err.Error(), false
	}
	if err := a.save(ctx, c.changes); err != nil {
		output += "\n" + a.alert.Sprint(err.Error())
	}
	return output, c.exit
}

// unknownCommand returns the message for an unknown command, with a suggestion if a known command
// is similar enough.
func (a *Assistant) unknownCommand(name string) string {
	suggestion, similarity := closestCommand(name, a.commandNames(), a.threshold)
	if suggestion == "" {
		return invalidCommand
	}
	return invalidCommand + "\n" + fmt.Sprintf(suggestionTempl, suggestion, similarity)
}

// save stores the collection that a command changed.
func (a *Assistant) save(ctx context.Context, changed target) error {
	var err error
	switch changed {
	case contactsTarget:
		err = a.store.SaveContacts(ctx, a.contacts)
	case notesTarget:
		err = a.store.SaveNotes(ctx, a.notes)
	default:
		return nil
	}
	if err != nil {
		a.log.Error().Err(err).Stringer("collection", changed).Msg("saving failed")
		return fmt.Errorf("could not save changes: %w", err)
	}
	a.log.Info().Stringer("collection", changed).Msg("changes saved")
	return nil
}

// SaveAll stores both collections.
func (a *Assistant) SaveAll(ctx context.Context) error {
	if err := a.save(ctx, contactsTarget); err != nil {
		return err
	}
	return a.save(ctx, notesTarget)
}

// Run reads commands from in until the user quits, the input ends or the context is canceled. Both
// collections are saved before Run returns.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, welcomeMessage)
	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			break
		}
		fmt.Fprint(out, a.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		output, exit := a.Execute(ctx, scanner.Text())
		if output != "" {
			fmt.Fprintln(out, strings.TrimRight(output, "\n"))
		}
		if exit {
			break
		}
	}
	if err := a.SaveAll(context.WithoutCancel(ctx)); err != nil {
		return err
	}
	return scanner.Err()
}
