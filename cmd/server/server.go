// Package main is the entry point of the money-manager-server application.
// It sets up and starts the server by calling initialization functions from the internal package.
package main

import (
	"money-manager-server/internal"
)

func main() {
	internal.Init()
}
