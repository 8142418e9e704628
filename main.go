package main

import "github.com/jsphweid/fingerdex/cmd"

func main() {
	cmd.Execute()
}
