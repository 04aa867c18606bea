// Command relalg serializes relational query plans into RelAlg JSON.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/relalg/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
