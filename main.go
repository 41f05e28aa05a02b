package main

import "github.com/sambabib/dumphals/cmd"

func main() {
	cmd.Execute()
}
