package main

import "github.com/dadrus/hookr/cmd"

func main() {
	cmd.Execute()
}
