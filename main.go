package main

import (
	"os"

	"github.com/nightness333/check-proxmox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
