package main

import "github.com/mj1618/rx2uitest/cmd"

func main() {
	cmd.Execute()
}
