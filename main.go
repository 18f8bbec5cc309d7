package main

import "l10n-manager/cmd"

func main() {
	cmd.Execute()
}
