package main

import (
	"os"

	"listbase/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
