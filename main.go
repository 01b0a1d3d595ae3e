package main

import "carril-bici/cmd"

func main() {
	cmd.Execute()
}
