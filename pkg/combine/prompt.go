package combine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// ErrInterrupted is returned when the user cancels at the prompt. The command
// layer maps it to a failure-style exit status distinct from normal errors.
var ErrInterrupted = errors.New("operation cancelled")

// promptState tracks the interactive retry loop. The loop only ever moves
// awaiting -> validating -> {accepted, back to awaiting}; cancellation exits
// from any state with no partial output.
type promptState int

const (
	stateAwaiting promptState = iota
	stateValidating
	stateAccepted
)

// promptLoop asks for item numbers until a valid selection arrives, then
// resolves the chosen indices against the listing. Selection errors re-prompt;
// SIGINT or end of input cancels cleanly with ErrInterrupted.
func (r *Runner) promptLoop(listing []string) ([]string, error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	// Lines are read on a separate goroutine so the loop can also wake up on
	// SIGINT while blocked waiting for input. The goroutine lives for the
	// rest of the process, which is the lifetime of the prompt anyway.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(r.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			readErr <- err
			return
		}
		readErr <- io.EOF
	}()

	var (
		line    string
		indices []int
	)
	state := stateAwaiting
	for state != stateAccepted {
		switch state {
		case stateAwaiting:
			fmt.Fprintf(r.Stdout, "\n%s\n > ", msgInputPrompt)
			select {
			case <-sigCh:
				fmt.Fprintf(r.Stdout, "\n%s\n", msgCancelled)
				return nil, ErrInterrupted
			case err := <-readErr:
				if errors.Is(err, io.EOF) {
					fmt.Fprintf(r.Stdout, "\n%s\n", msgCancelled)
					return nil, ErrInterrupted
				}
				return nil, err
			case line = <-lines:
				state = stateValidating
			}
		case stateValidating:
			parsed, err := ParseSelection(line, len(listing))
			if err != nil {
				r.reportSelectionError(err)
				state = stateAwaiting
				continue
			}
			indices = parsed
			state = stateAccepted
		}
	}

	selected := make([]string, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, listing[i])
	}
	return selected, nil
}

func (r *Runner) reportSelectionError(err error) {
	var selErr *SelectionError
	switch {
	case errors.Is(err, ErrEmptySelection):
		fmt.Fprintln(r.Stdout, msgEmptyInput)
	case errors.As(err, &selErr):
		fmt.Fprintf(r.Stdout, msgInvalidNumber+"\n", selErr.Token)
	default:
		fmt.Fprintln(r.Stdout, err)
	}
}
