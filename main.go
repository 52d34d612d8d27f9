package main

import "github.com/mreyes87/feedscout/cmd"

func main() {
	cmd.Execute()
}
