package main

import "reorder/cmd"

func main() {
	cmd.Execute()
}
