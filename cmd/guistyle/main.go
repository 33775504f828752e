// Command guistyle parses stylesheets, cascades styles over markup and lists
// the supported CSS properties.
//
// Configuration is read from ./guistyle.yaml (or the file given with
// --config), from environment variables with prefix GUISTYLE_ and from
// flags, in increasing order of precedence.
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
