package main

import "walletapi/cli/cmd"

func main() {
	cmd.Execute()
}
