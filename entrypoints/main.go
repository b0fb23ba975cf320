package main

import (
	"github.com/Aftab073/Ai-search-tool/cmd"
)

func main() {
	cmd.Execute()
}
