package main

import (
	"github.com/immutablex/imx-link/cli"
)

func main() {
	cli.Execute()
}
