package main

import "github.com/inovacc/macromind/cmd"

func main() {
	cmd.Execute()
}
