// Package main runs the wmutil CLI.
package main

// main is the entrypoint for the wmutil CLI.
func main() {
	Execute()
}
