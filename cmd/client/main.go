package main

import "gomarket/cmd/client/cmd"

func main() {
	cmd.Execute()
}
