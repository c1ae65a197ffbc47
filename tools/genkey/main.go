// Command genkey creates an Ed25519 node identity for test deployments.
// Usage: go run tools/genkey/main.go <key.pem>
// Output: <key.pem> with the private key, public key hex on stdout.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: genkey <key.pem>\n")
		os.Exit(1)
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate key: %v\n", err)
		os.Exit(1)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode key: %v\n", err)
		os.Exit(1)
	}

	block := &pem.Block{Type: "PRIVATE KEY", Bytes: der}
	if err := os.WriteFile(os.Args[1], pem.EncodeToMemory(block), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "write key: %v\n", err)
		os.Exit(1)
	}

	// The hex form is what the admin API reports as "key".
	fmt.Println(hex.EncodeToString(pub))
}
