package main

import "github.com/Sompom/listptr/cmd/listptr/cmd"

func main() {
	cmd.Execute()
}
