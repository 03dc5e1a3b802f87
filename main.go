package main

import "github.com/LegacyCodeHQ/includeresolver/cmd"

func main() {
	cmd.Execute()
}
