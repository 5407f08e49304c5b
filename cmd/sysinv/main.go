package main

import (
	"github.com/fleetops/sysinv/pkg/cli"
)

func main() {
	cli.Execute()
}
