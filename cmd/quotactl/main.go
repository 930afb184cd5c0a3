package main

import "quotactl/internal/cli"

func main() {
	cli.Execute()
}
