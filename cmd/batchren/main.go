package main

import "batchren/cmd/batchren/cmd"

func main() {
	cmd.Execute()
}
