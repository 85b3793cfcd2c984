package main

import (
	"os"

	"nanomorpho/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
