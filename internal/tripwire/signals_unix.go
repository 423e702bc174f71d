//go:build !windows

package tripwire

import (
	"os"
	"syscall"
)

var terminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
