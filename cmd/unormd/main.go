package main

import "github.com/TryMightyAI/unorm/cmd/unormd/cmd"

func main() {
	cmd.Execute()
}
