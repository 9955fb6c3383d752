package main

import "sweepdesk/cmd"

func main() {
	cmd.Execute()
}
