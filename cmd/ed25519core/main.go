// Command ed25519core is a thin CLI front end over the ed25519core
// library: it can generate a seed, sign a hex-encoded message, and
// verify a hex-encoded signature, in the spirit of zed25519's
// keygen/sign/verify CLI.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/go-ed25519/ed25519core"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "keygen":
		err = runKeygen(os.Args[2:])
	case "sign":
		err = runSign(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ed25519core:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ed25519core keygen | sign -seed HEX -msg HEX | verify -pub HEX -msg HEX -sig HEX")
}

func runKeygen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	fs.Parse(args)

	seed, err := ed25519core.GenerateSeed(rand.Reader)
	if err != nil {
		return err
	}
	priv := seed.Expand()

	fmt.Printf("seed:       %s\n", hex.EncodeToString(seed.Bytes()))
	fmt.Printf("public key: %s\n", hex.EncodeToString(priv.PublicKey().Bytes()))
	return nil
}

func runSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	seedHex := fs.String("seed", "", "hex-encoded 32-byte seed")
	msgHex := fs.String("msg", "", "hex-encoded message")
	fs.Parse(args)

	seedBytes, err := hex.DecodeString(*seedHex)
	if err != nil {
		return fmt.Errorf("decoding -seed: %w", err)
	}
	msg, err := hex.DecodeString(*msgHex)
	if err != nil {
		return fmt.Errorf("decoding -msg: %w", err)
	}

	seed, err := ed25519core.NewSeed(seedBytes)
	if err != nil {
		return err
	}

	sig := seed.Expand().Sign(msg)
	fmt.Println(hex.EncodeToString(sig.Bytes()))
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	pubHex := fs.String("pub", "", "hex-encoded 32-byte public key")
	msgHex := fs.String("msg", "", "hex-encoded message")
	sigHex := fs.String("sig", "", "hex-encoded 64-byte signature")
	fs.Parse(args)

	pubBytes, err := hex.DecodeString(*pubHex)
	if err != nil {
		return fmt.Errorf("decoding -pub: %w", err)
	}
	msg, err := hex.DecodeString(*msgHex)
	if err != nil {
		return fmt.Errorf("decoding -msg: %w", err)
	}
	sigBytes, err := hex.DecodeString(*sigHex)
	if err != nil {
		return fmt.Errorf("decoding -sig: %w", err)
	}

	pub, err := ed25519core.NewPublicKey(pubBytes)
	if err != nil {
		return err
	}
	sig, err := ed25519core.DecodeSignature(sigBytes)
	if err != nil {
		return err
	}

	if pub.Verify(msg, sig) {
		fmt.Println("ok")
		return nil
	}
	fmt.Println("invalid")
	os.Exit(1)
	return nil
}
