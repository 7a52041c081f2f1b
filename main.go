package main

import (
	"github.com/samber/lo"
	"github.com/touchmpv/touchmpv/cmd"
	"github.com/touchmpv/touchmpv/config"
	"github.com/touchmpv/touchmpv/internal/sweep"
	"github.com/touchmpv/touchmpv/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go sweep.Sockets()

	cmd.Execute()
}
