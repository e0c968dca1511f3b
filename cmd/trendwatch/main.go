package main

import (
	"os"

	"github.com/dshills/trendwatch/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
