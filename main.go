package main

import "github.com/ruheeh/waterchatbot/cmd"

func main() {
	cmd.Execute()
}
