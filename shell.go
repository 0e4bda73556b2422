package tempconv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lone-faerie/tempconv/log"
)

const menu = `--- Temperature Converter ---
1. Celsius to Fahrenheit
2. Fahrenheit to Celsius
3. Exit
`

const goodbye = "Thank you for using Temperature Converter. Goodbye!"

var prompts = map[Scale]string{
	Celsius:    "Enter temperature in Celsius: ",
	Fahrenheit: "Enter temperature in Fahrenheit: ",
}

// A Shell runs the interactive conversion menu over an injected
// reader and writer. Input is read one line at a time, invalid lines
// are re-prompted without ever failing the session.
type Shell struct {
	sc  *bufio.Scanner
	w   io.Writer
	pub Publisher
}

// A ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithPublisher sets the publisher that receives one [Event] per
// successful conversion.
func WithPublisher(p Publisher) ShellOption {
	return func(s *Shell) { s.pub = p }
}

// NewShell returns a Shell reading from r and printing to w.
func NewShell(r io.Reader, w io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		sc: bufio.NewScanner(r),
		w:  w,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run drives the menu loop until the user exits or input ends. Range
// violations and publish failures are reported and the loop continues,
// only a read error on the underlying reader is returned.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.w, menu)

		choice, err := s.readChoice()
		if err != nil {
			return s.closed("menu prompt", err)
		}

		if choice == 3 {
			fmt.Fprintln(s.w, goodbye)
			log.Info("Session ended")

			return nil
		}

		from, to := Celsius, Fahrenheit
		if choice == 2 {
			from, to = Fahrenheit, Celsius
		}

		if err = s.convert(from, to); err != nil {
			return s.closed("temperature prompt", err)
		}
	}
}

// closed normalizes end-of-input. EOF is a quiet termination, any
// other read error is surfaced to the caller.
func (s *Shell) closed(at string, err error) error {
	if errors.Is(err, io.EOF) {
		log.Warn("Input closed", "at", at)
		return nil
	}

	log.Error("Reading input", err, "at", at)

	return err
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.w, prompt)

	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return s.sc.Text(), nil
}

func (s *Shell) readChoice() (int, error) {
	for {
		line, err := s.readLine("Enter your choice (1-3): ")
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.w, "Error: Please enter a number between 1 and 3.")
			continue
		}

		if n < 1 || n > 3 {
			fmt.Fprintln(s.w, "Invalid choice. Please select 1, 2, or 3.")
			continue
		}

		return n, nil
	}
}

func (s *Shell) readValue(prompt string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Fprintln(s.w, "Error: Please enter a valid number.")
			continue
		}

		return v, nil
	}
}

func (s *Shell) convert(from, to Scale) error {
	v, err := s.readValue(prompts[from])
	if err != nil {
		return err
	}

	if err = Validate(v, from); err != nil {
		fmt.Fprintf(s.w, "Conversion Error: %s\n", err)
		log.Error("Temperature out of range", err)

		return nil
	}

	out := Convert(v, from, to)
	fmt.Fprintf(s.w, "%.2f%s = %.2f%s\n", v, from, out, to)
	log.Info(
		"Converted temperature",
		"value", v,
		"scale", from.Name(),
		"converted", out,
		"to", to.Name(),
	)

	if s.pub != nil {
		s.publish(v, out, from, to)
	}

	return nil
}

func (s *Shell) publish(v, out float64, from, to Scale) {
	e := Event{
		Value:     v,
		Scale:     from.Name(),
		Converted: out,
		To:        to.Name(),
		Time:      time.Now(),
	}

	if err := s.pub.Publish(e); err != nil {
		fmt.Fprintf(s.w, "An unexpected error occurred: %v\n", err)
		log.Error("Publishing conversion event", err)
	}
}
