//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA through the
// audio speaker) that write directly to file descriptor 2, bypassing Go's
// os.Stderr. This prevents raw error messages from corrupting the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
)

// Messages receives stderr lines captured from C libraries that were not
// consumed by Forward. It is replaced by each Start and closed by Stop.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	readerDone chan struct{}
	started    bool
)

// Start begins capturing stderr output.
// Must be called early in main(), before any C library initialization.
// Returns an error if capture cannot be set up, but the program can continue
// without stderr capture (errors will just go to the original stderr).
func Start() error {
	if started {
		return nil
	}

	// Create a pipe
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	// Save original stderr file descriptor
	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	msgs := make(chan string, 100)
	done := make(chan struct{})
	Messages = msgs
	readerDone = done

	go func() {
		defer close(done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				select {
				case msgs <- line:
				default:
					// Channel full, drop message to avoid blocking
				}
			}
		}
	}()

	return nil
}

// Stop restores the original stderr. Should be called on program exit.
// Messages is closed once the reader has drained the pipe.
func Stop() {
	if !started {
		return
	}

	// Restore original stderr. This drops fd 2's reference to the pipe.
	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	// Closing the last write end lets the reader see EOF.
	pipeWrite.Close()
	<-readerDone
	pipeRead.Close()

	close(Messages)
	started = false
}

// Forward drains captured lines into log at warn level until Stop is called.
func Forward(log zerolog.Logger) {
	msgs := Messages
	go func() {
		for line := range msgs {
			log.Warn().Str("source", "stderr").Msg(line)
		}
	}()
}
