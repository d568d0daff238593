// Command stride is the career-management CLI.
package main

import "github.com/stride-careers/stride/internal/cli"

func main() {
	cli.Execute()
}
