// main.go
package main

import "github.com/jackchuka/vcsinfo/cmd"

func main() {
	cmd.Execute()
}
