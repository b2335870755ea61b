package main

import (
	"fmt"
	"os"

	"github.com/lachdavey/ledgerdoc/cmd"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("ledgerdoc version %s\n", version)
		os.Exit(0)
	}

	cmd.Execute()
}
