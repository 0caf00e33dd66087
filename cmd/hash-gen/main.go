// Command hash-gen prints operator secrets: a bcrypt hash for a password, or a fresh
// SESSION_ENCRYPTION_KEY.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tradedesk.backend/internal/config"
	"tradedesk.backend/pkg/crypto"
)

var (
	stdout         io.Writer = os.Stdout
	loadCfg                  = config.Load
	randomTokenFn            = crypto.GenerateRandomToken
	fatalfFn                 = log.Fatalf
	defaultPassword           = "changeme123"
)

func run(args []string) error {
	fs := flag.NewFlagSet("hash-gen", flag.ContinueOnError)
	fs.SetOutput(stdout)
	sessionKey := fs.Bool("session-key", false, "print a random 32-byte session encryption key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *sessionKey {
		key, err := randomTokenFn(32)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "SESSION_ENCRYPTION_KEY=%s\n", key)
		return nil
	}

	password := defaultPassword
	if fs.NArg() > 0 {
		password = fs.Arg(0)
	}

	cost := loadCfg().Security.BcryptCost
	fmt.Fprintf(stdout, "Generating hash for password: %s (cost %d)\n", password, cost)
	hash, err := crypto.NewHasher(cost).Hash(password)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Bcrypt Hash: %s\n", hash)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatalfFn("hash-gen: %v", err)
	}
}
