package main

import "github.com/mouse-blink/applyeval/cmd"

func main() {
	cmd.Execute()
}
