package main

import "strings-diff/cmd"

func main() {
	cmd.Execute()
}
