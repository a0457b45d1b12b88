package main

import "github.com/biosurvintl/merger-cli/cmd"

func main() {
	cmd.Execute()
}
