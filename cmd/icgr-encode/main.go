// cmd/icgr-encode/main.go
package main

import (
	"os"

	"icgr/internal/encodeapp"
)

func main() {
	os.Exit(encodeapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
