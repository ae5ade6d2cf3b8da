// hashpass prints the bcrypt hash of a password, for use as
// DASHBOARD_PASSWORD_HASH.
package main

import (
	"fmt"
	"os"

	"github.com/npapadam/openclaw-dashboard/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: hashpass <password>")
		os.Exit(1)
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
