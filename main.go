package main

import "github.com/josephlewis42/dcshell/cmd"

func main() {
	cmd.Execute()
}
