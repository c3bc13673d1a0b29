package main

import "fmt"

// Version is stamped at build time via -ldflags "-X main.Version=...".
var Version = "dev"

func printVersion() {
	fmt.Printf("quickbar %s\n", Version)
}
