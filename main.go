package main

import "github.com/pders01/abref/cmd"

func main() {
	cmd.Execute()
}
