package main

import "github.com/cheerioskun/termchart/internal/cmd"

func main() {
	cmd.Execute()
}
