// Command hopweight runs the hop-ordered shortest-path and BFS parent-tree
// algorithms over built-in fixture graphs and prints the results.
package main

import (
	"github.com/katalvlaran/hopweight/cmd/hopweight/commands"
)

func main() {
	commands.Execute()
}
