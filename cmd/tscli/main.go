package main

import "github.com/fyerfyer/treeset/cmd/tscli/cmd"

func main() {
	cmd.Execute()
}
