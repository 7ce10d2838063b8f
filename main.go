// Package main is the entry point for the mpvlink application.
package main

import (
	"github.com/mpvlink-cli/mpvlink/cmd"
	"github.com/mpvlink-cli/mpvlink/config"
	"github.com/mpvlink-cli/mpvlink/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
