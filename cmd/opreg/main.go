package main

import (
	"context"

	"github.com/scott-cotton/cli"
	_ "github.com/signadot/opreg/builtin"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
