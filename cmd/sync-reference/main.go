package main

import "fysoref/cmd/sync-reference/cmd"

func main() {
	cmd.Execute()
}
