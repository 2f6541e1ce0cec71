package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/agetick/agetick/cmd"
	errUtils "github.com/agetick/agetick/errors"
	log "github.com/agetick/agetick/pkg/logger"
)

func main() {
	// Exit with the correct POSIX code (128 + signal number) on interrupt.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the application and returns its exit code.
func run() int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	// A user abort is a normal way out; no error output.
	if !errUtils.Is(err, errUtils.ErrAborted) {
		log.Error(err)
	}
	return errUtils.GetExitCode(err)
}
