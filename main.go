package main

import "github.com/iksnae/bookmark-tag/cmd"

func main() {
	cmd.Execute()
}
