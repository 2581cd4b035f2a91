package main

import "github.com/simplesh/simplesh/cmd"

func main() {
	cmd.Execute()
}
