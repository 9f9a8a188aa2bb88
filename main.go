package main

import "github.com/spinapp/spin/internal/cli"

func main() {
	cli.Execute()
}
