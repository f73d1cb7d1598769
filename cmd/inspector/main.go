package main

import (
	"github.com/thirdweb-dev/inspector/cmd"
)

func main() {
	cmd.Execute()
}
