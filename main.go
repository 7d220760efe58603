// Package main is the entry point of mpctl.
package main

import (
	"github.com/mpctl/mpctl/cmd"
	"github.com/mpctl/mpctl/config"
	"github.com/mpctl/mpctl/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
