package main

import "github.com/forPelevin/goalcut/internal/cli"

func main() { cli.Main() }
