package main

import "github.com/promptbox/promptbox/internal/ui/cli"

func main() {
	cli.Execute()
}
