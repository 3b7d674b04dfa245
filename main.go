package main

import (
	"fmt"
	"os"

	"github.com/Sompom/listptr/pkg/list"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: listptr <string-of-digits>")
		return
	}
	arg := os.Args[1]

	// Build the list with the indirect variant, one node per character
	var head *list.Node
	for i := 0; i < len(arg); i++ {
		list.AppendIndirect(&head, int(arg[i])-'0')
	}

	fmt.Println(list.Values(head))
}
