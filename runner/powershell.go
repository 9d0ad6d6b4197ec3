package runner

import (
	"bufio"
	"context"
	"io"
	"io/ioutil"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024

type Command struct {
	Executable string
	Args       []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Executable}, c.Args...), " ")
}

// Relay receives the output of a running script one line at a time.
// Calls are never made concurrently.
type Relay interface {
	Stdout(line string)
	Stderr(line string)
}

type Powershell struct {
	// Dir is the working directory of the child. Empty means inherit.
	Dir string
}

// Run starts the command and blocks until it has exited and both of its
// output streams are drained. The exit status of the child is ignored;
// only failures to start it or to read its output are returned.
func (p *Powershell) Run(ctx context.Context, command Command, relay Relay) error {
	cmd := exec.CommandContext(ctx, command.Executable, command.Args...)
	cmd.Dir = p.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open stdout")
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open stderr")
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", command.Executable)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		readErr error
	)

	pump := func(r io.Reader, emit func(string)) {
		defer wg.Done()

		var (
			reader = bufio.NewReaderSize(r, 64*1024)
			line   []byte
		)

		for {
			chunk, isPrefix, err := reader.ReadLine()
			if err != nil {
				if err != io.EOF {
					mu.Lock()
					if readErr == nil {
						readErr = err
					}
					mu.Unlock()
					io.Copy(ioutil.Discard, r)
				}
				return
			}

			line = append(line, chunk...)
			if isPrefix && len(line) < maxLineSize {
				continue
			}

			// Overlong lines are relayed in pieces of maxLineSize.
			mu.Lock()
			emit(string(line))
			mu.Unlock()
			line = line[:0]
		}
	}

	wg.Add(2)
	go pump(stdout, relay.Stdout)
	go pump(stderr, relay.Stderr)
	wg.Wait()

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if readErr != nil {
		return errors.Wrapf(readErr, "failed to read output of %s", command.Executable)
	}

	if _, ok := waitErr.(*exec.ExitError); ok {
		return nil
	}

	return errors.Wrapf(waitErr, "failed waiting for %s", command.Executable)
}
