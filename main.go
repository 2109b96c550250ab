package main

import (
	"os"

	"github.com/yeshsurya/React-Flow-MCP-Server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
