// Package main is the entry point for the stacklab application.
package main

import (
	"github.com/samber/lo"
	"github.com/stacklab/stacklab/cmd"
	"github.com/stacklab/stacklab/config"
	"github.com/stacklab/stacklab/log"
	"github.com/stacklab/stacklab/util"
	"github.com/stacklab/stacklab/where"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Leftovers from previous runs are not worth failing over.
	go func() {
		_ = util.Delete(where.Temp())
	}()

	cmd.Execute()
}
