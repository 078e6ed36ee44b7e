package main

import "node-config/cmd"

func main() {
	cmd.Execute()
}
