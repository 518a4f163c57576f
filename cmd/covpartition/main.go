package main

import "github.com/arl/covpartition/cmd/covpartition/cmd"

func main() {
	cmd.Execute()
}
