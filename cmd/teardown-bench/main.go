/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/teardowntree/cmd/teardown-bench/cmd"

func main() {
	cmd.Execute()
}
