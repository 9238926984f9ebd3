// Package main boots the Quick Mart register CLI.
package main

import (
	"fmt"
	"os"

	"github.com/quickmart/register/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "register:", err)
		os.Exit(1)
	}
}
