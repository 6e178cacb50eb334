package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint computes a stable hash identifying one analyzed file blob
func Fingerprint(file string, content []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|", file)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}
