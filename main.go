package main

import (
	"github.com/dailynotes/daily/cmd"
)

func main() {
	cmd.Execute()
}
