package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/yeremiapane/spot-seeder/verify"
)

// checkpass verifies that a user's password in a generated artifact equals
// the user's nickname. Usage: checkpass [-f dummy_data.sql] <nickname>
func main() {
	file := flag.String("f", "dummy_data.sql", "path to the generated SQL artifact")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: checkpass [-f artifact.sql] <nickname>")
		fmt.Fprintln(os.Stderr, "Example: checkpass user5")
		os.Exit(2)
	}
	nickname := flag.Arg(0)

	fmt.Printf("Testing password for user: %s\n", nickname)

	userID, digest, err := verify.FindDigest(*file, nickname)
	if err != nil {
		switch {
		case errors.Is(err, verify.ErrArtifactMissing):
			fmt.Printf("Error: %s not found. Run seedgen first.\n", *file)
		case errors.Is(err, verify.ErrUserNotFound):
			fmt.Printf("Error: user %q not found in %s\n", nickname, *file)
		case errors.Is(err, verify.ErrDigestNotFound):
			fmt.Printf("Error: password digest not found for %q\n", nickname)
		default:
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}

	if err := verify.Check(digest, nickname); err != nil {
		if errors.Is(err, verify.ErrHashUnavailable) {
			fmt.Printf("Error: digest for %q is a placeholder; the artifact was generated without hashing\n", nickname)
		} else {
			fmt.Printf("FAILED: password verification failed for %q\n", nickname)
		}
		os.Exit(1)
	}

	fmt.Printf("OK: password verification successful for %q\n", nickname)
	fmt.Printf("  user_id:  %s\n", userID)
	fmt.Printf("  email:    %s@example.com\n", nickname)
	fmt.Printf("  password: %s\n", nickname)
}
