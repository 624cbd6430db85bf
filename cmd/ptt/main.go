package main

import (
	"os"

	"github.com/allbin/ptt/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
