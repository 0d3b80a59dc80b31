package main

import "nop/cmd/nopctl/cmd"

func main() {
	cmd.Execute()
}
