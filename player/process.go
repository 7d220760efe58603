package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/mpctl/mpctl/log"
)

const readChunkSize = 4096

// Stream identifies the output pipe a line came from.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// ExitStatus describes how the process ended.
type ExitStatus struct {
	Code int

	// Crashed is set when the process was killed by a signal or its exit
	// state is unknown.
	Crashed bool

	Err error
}

// OutputSink receives the output and the exit of a started process.
// Line is called from reader goroutines, one per stream.
type OutputSink interface {
	Line(stream Stream, line string)
	Exit(status ExitStatus)
}

// process is what the Player needs from a running player binary.
type process interface {
	Start(ctx context.Context, binary string, args []string, sink OutputSink) error
	Write(cmd string) error
	Stop(timeout time.Duration) bool
	Running() bool
}

// ProcessHandle runs the player binary with piped stdio.
// A handle is started at most once.
type ProcessHandle struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	exited chan struct{}
}

// Start launches binary and waits until it writes its first output, the
// context is done, or the process exits. On failure the process is killed
// and sink.Exit is never called.
func (h *ProcessHandle) Start(ctx context.Context, binary string, args []string, sink OutputSink) error {
	cmd := exec.Command(binary, args...)
	cmd.SysProcAttr = sysProcAttr()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", binary, err)
	}
	log.Infof("player: started %s (pid %d)", binary, cmd.Process.Pid)

	var (
		ready     = make(chan struct{})
		readyOnce sync.Once
		reaped    = make(chan struct{})
		started   = make(chan bool, 1)
		exited    = make(chan struct{})
		readers   sync.WaitGroup
	)
	markReady := func() { readyOnce.Do(func() { close(ready) }) }

	h.mu.Lock()
	h.cmd = cmd
	h.stdin = stdin
	h.exited = exited
	h.mu.Unlock()

	readers.Add(2)
	go h.read(stdout, Stdout, sink, markReady, &readers)
	go h.read(stderr, Stderr, sink, markReady, &readers)

	go func() {
		readers.Wait()
		status := exitStatus(cmd, cmd.Wait())
		log.Infof("player: process exited (code %d, crashed %t)", status.Code, status.Crashed)
		close(reaped)

		if <-started {
			sink.Exit(status)
		}
		close(exited)
	}()

	select {
	case <-ready:
		started <- true
		return nil
	case <-reaped:
		select {
		case <-ready:
			// Spoke before dying. The exit is reported through the sink.
			started <- true
			return nil
		default:
		}
	case <-ctx.Done():
	}

	started <- false
	_ = killProcess(cmd)
	<-exited

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("waiting for %s: %w", binary, err)
	}
	return fmt.Errorf("%s exited before it was ready", binary)
}

func (h *ProcessHandle) read(r io.Reader, stream Stream, sink OutputSink, ready func(), wg *sync.WaitGroup) {
	defer wg.Done()

	var splitter LineSplitter
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			ready()
			for _, line := range splitter.Feed(buf[:n]) {
				sink.Line(stream, line)
			}
		}
		if err != nil {
			if line, ok := splitter.Flush(); ok {
				sink.Line(stream, line)
			}
			if !errors.Is(err, io.EOF) {
				log.Debugf("player: %s read: %v", stream, err)
			}
			return
		}
	}
}

// Write sends one command, appending the newline if missing.
func (h *ProcessHandle) Write(cmd string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stdin == nil || !h.runningLocked() {
		return errNotRunning
	}

	if !strings.HasSuffix(cmd, "\n") {
		cmd += "\n"
	}
	_, err := io.WriteString(h.stdin, cmd)
	return err
}

// Stop asks the process to quit and waits up to timeout before killing its
// process group. It reports whether the process quit on its own.
func (h *ProcessHandle) Stop(timeout time.Duration) bool {
	h.mu.Lock()
	cmd, exited := h.cmd, h.exited
	h.mu.Unlock()

	if exited == nil {
		return true
	}

	select {
	case <-exited:
		return true
	default:
	}

	if err := h.Write("quit"); err != nil {
		log.Warnf("player: sending quit: %v", err)
	}

	select {
	case <-exited:
		return true
	case <-time.After(timeout):
		log.Warnf("player: process did not quit within %s, killing it", timeout)
		_ = killProcess(cmd)
		<-exited
		return false
	}
}

// Running reports whether the process has been started and not yet reaped.
func (h *ProcessHandle) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.runningLocked()
}

func (h *ProcessHandle) runningLocked() bool {
	if h.exited == nil {
		return false
	}
	select {
	case <-h.exited:
		return false
	default:
		return true
	}
}

func exitStatus(cmd *exec.Cmd, err error) ExitStatus {
	state := cmd.ProcessState
	if state == nil {
		return ExitStatus{Code: -1, Crashed: true, Err: err}
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return ExitStatus{Code: state.ExitCode(), Crashed: true, Err: err}
	}

	return ExitStatus{
		Code:    state.ExitCode(),
		Crashed: !state.Exited(),
		Err:     err,
	}
}
