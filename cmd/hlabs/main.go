package main

import "github.com/hlabs/hlabs-web/cmd/hlabs/cmd"

func main() {
	cmd.Execute()
}
