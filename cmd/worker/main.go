package main

import "bitbucket.org/Amartha/go-fp-reconciliation/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
