package task

import (
	"fmt"
	"io"
	"sync"
)

type Result int

const (
	Succeeded Result = iota
	Failed
)

func (r Result) String() string {
	switch r {
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Reporter records the task result and announces every change to the
// agent. A task that never calls SetResult is considered Succeeded.
type Reporter struct {
	out     io.Writer
	mu      sync.Mutex
	result  Result
	message string
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) SetResult(result Result, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.result = result
	r.message = message

	fmt.Fprintln(r.out, LoggingCommand{
		Name:       "task.complete",
		Properties: map[string]string{"result": result.String()},
		Message:    message,
	})
}

func (r *Reporter) Result() (Result, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.result, r.message
}
