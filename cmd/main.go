package main

import "cargo_dev_v1_202609/internal/cli"

func main() {
	cli.Execute()
}
