package main

import "github.com/headerhawk/headerhawk/cmd"

// execCmd is indirected so tests can stub command execution.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
