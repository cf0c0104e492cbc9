package main

import "github.com/thenoetrevino/priosched/cmd"

func main() {
	cmd.Execute()
}
