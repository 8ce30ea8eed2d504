package main

import "github.com/notargets/coons/cmd"

func main() {
	cmd.Execute()
}
