//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of tilelife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/tilelife` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless runs use `go run ./cmd/life-batch`.")
	os.Exit(2)
}
