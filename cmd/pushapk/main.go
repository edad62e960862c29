package main

import "github.com/mozilla-releng/pushapk/internal/cli"

func main() {
	cli.Execute()
}
