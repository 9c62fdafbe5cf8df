package main

import "github.com/mutro/termindex/cmd"

func main() {
	cmd.Execute()
}
