package cmd

import "github.com/pterm/pterm"

// printSeparator closes a block of command output.
func printSeparator() {
	pterm.Println(pterm.Cyan("----------------------------------------"))
}
