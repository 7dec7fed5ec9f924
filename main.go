package main

import (
	"github.com/mindcleanse/go-mindcleanse/commands"
)

func main() {
	commands.Execute()
}
