package main

import "slasshy/cmd"

func main() {
	cmd.Execute()
}
