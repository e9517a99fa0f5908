package main

import (
	"podscribe/cmd/podscribe/cmd"
)

func main() {
	cmd.Execute()
}
