package main

import "github.com/dringlabs/fixturegen/cmd"

func main() {
	cmd.Execute()
}
