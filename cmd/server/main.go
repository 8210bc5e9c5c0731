package main

import "github.com/nfrund/googledash/cmd/server/cmd"

func main() {
	cmd.Execute()
}
