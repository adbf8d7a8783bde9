package main

import "github.com/LeJamon/xrplcodec/internal/cli"

func main() {
	cli.Execute()
}
