package main

import "github.com/StinkyLord/pcb-part-matcher/cmd"

func main() {
	cmd.Execute()
}
