package main

import "github.com/nanovms/genboot/cmd"

func main() {
	cmd.Execute()
}
