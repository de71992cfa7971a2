package main

import "github.com/bz888/agentchat/cmd"

func main() {
	cmd.Execute()
}
