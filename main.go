package main

import "github.com/gaurav-prasanna/mdfixtures/cmd"

func main() {
	cmd.Execute()
}
