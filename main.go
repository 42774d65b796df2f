package main

import "project-health/src/handler/cli"

func main() {
	cli.Run()
}
