package main

import "github.com/pwga/pwga-league/internal/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
