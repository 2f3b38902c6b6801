package main

import "github.com/symscreen/symscreen-cli/cmd"

func main() {
	cmd.Execute()
}
