/*
Copyright © 2026 Ethan Faust (ethanfaust)
*/
package main

import "github.com/ethanfaust/minigrep/cmd"

func main() {
	cmd.Execute()
}
