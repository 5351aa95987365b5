package main

import "github.com/gaurav-prasanna/moxdown/cmd"

func main() {
	cmd.Execute()
}
