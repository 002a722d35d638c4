package main

import "github.com/mvp-joe/cmakegen/internal/cli"

func main() {
	cli.Execute()
}
