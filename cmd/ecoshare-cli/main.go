package main

import "github.com/nfrund/ecoshare/cmd/ecoshare-cli/cmd"

func main() {
	cmd.Execute()
}
