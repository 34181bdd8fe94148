package main

import "github.com/KostasZigo/gostore/cmd"

func main() {
	cmd.Execute()
}
