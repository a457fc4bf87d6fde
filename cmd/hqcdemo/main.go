// Command hqcdemo exercises HQC-PKE and HQC-KEM end to end from the command
// line, printing hex-encoded keys, ciphertexts, and shared secrets. Grounded
// on the teacher's experiments/boot_precision/boot_precision.go flag+log
// driver shape.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pqclabs/hqc/kem"
	"github.com/pqclabs/hqc/params"
	"github.com/pqclabs/hqc/pke"
)

var (
	paramSet = flag.String("params", "HQC-1", "parameter set: HQC-1, HQC-3, or HQC-5")
	format   = flag.String("format", "full", "dkKEM format: full or compressed")
	seedHex  = flag.String("seed", "", "32-byte hex seed; random if empty")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: hqcdemo [-params HQC-1|HQC-3|HQC-5] [-format full|compressed] [-seed hex] pke|kem")
		flag.PrintDefaults()
		os.Exit(1)
	}

	p, ok := params.ByName(*paramSet)
	if !ok {
		log.Fatalf("unknown parameter set %q", *paramSet)
	}
	log.Printf("running with %s", p)

	seed := resolveSeed(*seedHex)

	switch flag.Args()[0] {
	case "pke":
		runPKE(p, seed)
	case "kem":
		runKEM(p, seed)
	default:
		fmt.Println("unknown subcommand, expected pke or kem")
		os.Exit(1)
	}
}

func resolveSeed(seedHex string) [32]byte {
	var seed [32]byte
	if seedHex == "" {
		if _, err := rand.Read(seed[:]); err != nil {
			log.Fatalf("generating random seed: %v", err)
		}
		return seed
	}
	b, err := hex.DecodeString(seedHex)
	if err != nil {
		log.Fatalf("decoding -seed: %v", err)
	}
	if len(b) != 32 {
		log.Fatalf("-seed must be 32 bytes, got %d", len(b))
	}
	copy(seed[:], b)
	return seed
}

func runPKE(p params.Parameters, seedPKE [32]byte) {
	ek, dk := pke.Keygen(p, seedPKE)
	ekBytes, err := ek.MarshalBinary()
	if err != nil {
		log.Fatalf("marshal ek: %v", err)
	}
	log.Printf("ekPKE = %s", hex.EncodeToString(ekBytes))

	m := make([]byte, p.KBytes())
	if _, err := rand.Read(m); err != nil {
		log.Fatalf("generating message: %v", err)
	}
	var theta [32]byte
	if _, err := rand.Read(theta[:]); err != nil {
		log.Fatalf("generating theta: %v", err)
	}

	c, err := pke.Encrypt(p, ek, m, theta)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	cBytes, err := c.MarshalBinary()
	if err != nil {
		log.Fatalf("marshal ciphertext: %v", err)
	}
	log.Printf("m       = %s", hex.EncodeToString(m))
	log.Printf("cPKE    = %s", hex.EncodeToString(cBytes))

	decrypted, ok := pke.Decrypt(p, dk, c)
	if !ok {
		log.Fatal("decryption failed (⊥)")
	}
	log.Printf("decrypt = %s", hex.EncodeToString(decrypted))

	if hex.EncodeToString(decrypted) != hex.EncodeToString(m) {
		log.Fatal("round trip mismatch")
	}
	fmt.Println("PKE round trip OK")
}

func runKEM(p params.Parameters, seedKEM [32]byte) {
	kemFormat := resolveFormat(*format)

	ek, dk, err := kem.KeygenFromSeed(p, seedKEM, kemFormat)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}

	m := make([]byte, p.KBytes())
	if _, err := rand.Read(m); err != nil {
		log.Fatalf("generating message: %v", err)
	}
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		log.Fatalf("generating salt: %v", err)
	}

	k, c, err := kem.EncapsWith(p, ek, m, salt)
	if err != nil {
		log.Fatalf("encaps: %v", err)
	}
	cBytes, err := c.MarshalBinary()
	if err != nil {
		log.Fatalf("marshal ciphertext: %v", err)
	}
	log.Printf("cKEM = %s", hex.EncodeToString(cBytes))
	log.Printf("K    = %s", hex.EncodeToString(k[:]))

	kPrime := kem.Decaps(p, dk, c)
	log.Printf("K'   = %s", hex.EncodeToString(kPrime[:]))

	if k != kPrime {
		log.Fatal("encaps/decaps shared secrets disagree")
	}
	fmt.Println("KEM round trip OK")
}

func resolveFormat(s string) kem.Format {
	switch s {
	case "full":
		return kem.Full
	case "compressed":
		return kem.Compressed
	default:
		log.Fatalf("unknown -format %q, expected full or compressed", s)
		return kem.Full
	}
}
