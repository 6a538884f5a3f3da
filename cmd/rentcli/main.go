package main

import "github.com/momeni/rental-console/cmd/rentcli/command"

func main() {
	command.Execute()
}
