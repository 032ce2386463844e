package main

import (
	"os"

	"github.com/jmigpin/formlayout/core"
)

func main() {
	os.Exit(core.Execute())
}
