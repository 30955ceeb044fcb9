package main

import "github.com/cisto/site/cmd/cisto/cmd"

func main() {
	cmd.Execute()
}
