// Package main prints the bcrypt hash of an API token, the value for the
// GYMRANK_API_SECRET_HASH env var. The token is read from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/2beens/gymrank/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	cost := flag.Int("cost", pkg.DefaultTokenHashCost, "bcrypt cost")
	flag.Parse()

	token, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && token == "" {
		log.Fatalf("read token: %s", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		log.Fatal("empty token")
	}

	hash, err := pkg.HashToken(token, *cost)
	if err != nil {
		log.Fatalf("hash token: %s", err)
	}
	fmt.Println(hash)
}
