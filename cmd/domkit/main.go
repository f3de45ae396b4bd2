package main

import "github.com/shiroyk/domkit/cmd"

func main() {
	cmd.Execute()
}
