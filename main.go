package main

import "github.com/triageagent/triage-cli/cmd"

func main() {
	cmd.Execute()
}
