// cmd/icgr-decode/main.go
package main

import (
	"os"

	"icgr/internal/decodeapp"
)

func main() {
	os.Exit(decodeapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
