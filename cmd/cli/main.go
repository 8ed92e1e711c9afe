package main

import "github.com/pep299/insight-agent/internal/cli"

func main() {
	cli.Main()
}
