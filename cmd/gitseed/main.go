// Command gitseed creates the on-disk layout of a new repository.
//
// Usage:
//
//	gitseed init <path>
//	gitseed config list|get|set|unset
//
// Exit codes:
//
//	0 - Success
//	1 - Command failed
//	2 - Invalid arguments
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
