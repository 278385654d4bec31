package main

import "github.com/jmgilman/go/resio/internal/cli"

func main() {
	cli.Execute()
}
