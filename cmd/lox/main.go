/*
File   : lox/cmd/lox/main.go
*/
package main

import (
	"os"

	"github.com/loxlang/lox/cmd/lox/cmd"
)

func main() {
	cmd.Execute()
	os.Exit(cmd.ExitCode)
}
