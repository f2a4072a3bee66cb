package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/term"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// keyInterrupt is what Ctrl+C produces once the terminal is in raw mode.
const keyInterrupt rune = 0x03

// Prompter interface provides user interaction functionality.
// Implementations must serialize prompts: only one question is on screen at a time.
type Prompter interface {
	// PromptForKey prints message and returns the single key typed in response.
	// An empty response returns the zero rune and no error.
	PromptForKey(message string) (rune, error)

	// WaitForEnter prints message and blocks until a newline is read.
	WaitForEnter(message string) error
}

type realPrompt struct {
	mu     sync.Mutex
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance reading stdin and writing stdout.
func NewPrompt() Prompter {
	return &realPrompt{
		in:     os.Stdin,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// PromptForKey prints message and returns the single key typed in response.
// On a terminal the key is read without waiting for Enter.
func (p *realPrompt) PromptForKey(message string) (rune, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprint(p.out, message)
	key, err := p.readKey()
	fmt.Fprintln(p.out)
	if err != nil {
		return 0, err
	}

	if key == keyInterrupt {
		return 0, ErrInterrupted
	}

	return key, nil
}

// WaitForEnter prints message and blocks until a newline is read.
func (p *realPrompt) WaitForEnter(message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, message)

	if _, err := p.reader.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return nil
}

func (p *realPrompt) readKey() (rune, error) {
	if p.in != nil {
		fd := int(p.in.Fd())
		if term.IsTerminal(fd) {
			if state, err := term.MakeRaw(fd); err == nil {
				defer func() { _ = term.Restore(fd, state) }()
				return p.readRawKey()
			}
		}
	}

	return p.readLineKey()
}

// readRawKey reads one key with echo off, so printable keys are echoed here.
func (p *realPrompt) readRawKey() (rune, error) {
	key, _, err := p.reader.ReadRune()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if unicode.IsPrint(key) {
		fmt.Fprintf(p.out, "%c", key)
	}
	return key, nil
}

// readLineKey is used when stdin is not a terminal: the first character of
// the next line is the response.
func (p *realPrompt) readLineKey() (rune, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return 0, nil
	}

	key, _ := utf8.DecodeRuneInString(line)
	return key, nil
}
