package main

import "github.com/pablor21/typeinduct/cmd/typeinduct-demo/cmd"

func main() {
	cmd.Execute()
}
