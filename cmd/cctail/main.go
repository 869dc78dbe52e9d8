package main

import (
	"os"

	"github.com/cctail/cctail/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
