// Command corrosion-admin administers a running Corrosion node through its
// admin endpoint.
package main

import (
	"context"
	"os"

	"github.com/joeblew999/corrosion/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
