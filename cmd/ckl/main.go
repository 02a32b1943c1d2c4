package main

import "checkline/cmd/ckl/root"

func main() {
	root.Execute()
}
