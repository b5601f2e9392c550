package main

import (
	"github.com/bililink-cli/bililink/cmd"
	"github.com/bililink-cli/bililink/config"
	"github.com/bililink-cli/bililink/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
