// Command geodesy inspects the built-in catalog of reference ellipsoids
// and geodetic datums.
package main

import (
	"os"

	"github.com/sgraaf/geodesy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
