package main

import (
	"os"

	"conf-rollback/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
