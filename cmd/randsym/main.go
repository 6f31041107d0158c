// Command randsym expands randsym markers in source files.
//
//	randsym [-s] [-d] [-c config.yaml] [-o dir] [-e .rs,.go] file|dir...
//
// Expanded sources are written to stdout unless an output folder is given.
package main

import "os"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
