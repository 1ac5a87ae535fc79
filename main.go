package main

import "github.com/tayloree/pantry/cmd"

func main() {
	cmd.Execute()
}
