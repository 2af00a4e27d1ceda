package main

import "shiftsync/cmd"

func main() {
	cmd.Execute()
}
