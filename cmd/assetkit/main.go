package main

import "github.com/youruser/assetkit/internal/cli"

func main() {
	cli.Execute()
}
