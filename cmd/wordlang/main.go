// Command wordlang segments text into words and guesses their languages
package main

import "wordlang/cmd/wordlang/cmd"

func main() {
	cmd.Execute()
}
