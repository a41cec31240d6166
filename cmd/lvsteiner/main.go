// Command lvsteiner builds a synthetic graph and approximates a minimum
// Steiner tree over a chosen terminal set.
//
//	lvsteiner solve --topology random --n 200 --p 0.05 --terminals 12 --algorithm zelikovsky
//	lvsteiner solve --topology grid --rows 8 --cols 8 --terminals 6 --config opts.yaml --format yaml
//	lvsteiner version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
