//go:build windows

package tripwire

import "os"

var terminationSignals = []os.Signal{os.Interrupt}
