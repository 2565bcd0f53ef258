package main

import "github.com/amc-tools/amc-answers/internal/cli"

func main() {
	cli.Execute()
}
