package main

import (
	"os"
	sys "os"
)

func main() {
	defer cleanup()
	os.Exit(1)  // want "calling os.Exit in main package main func"
	sys.Exit(2) // want "calling os.Exit in main package main func"
	func() {
		os.Exit(3)
	}()
}

func cleanup() {
	os.Exit(0)
}
