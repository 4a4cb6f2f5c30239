package main

import (
	"os"

	"github.com/thand-io/superadmin/cmd/cli"
)

func main() {
	os.Exit(cli.Execute())
}
