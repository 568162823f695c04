package main

import "github.com/diogo/llmsay/internal/commands"

func main() {
	commands.Execute()
}
