package entity

import (
	"fmt"
	"math/rand/v2"
)

// Record-type ID prefixes. Keys are 12 characters: 4-char prefix plus
// 8 random alphanumerics, generated when the caller leaves the ID empty.
const (
	PrefixSupplier   = "SUP_"
	PrefixPart       = "PRT_"
	PrefixBox        = "BOX_"
	PrefixPallet     = "PLT_"
	PrefixModel      = "MDL_"
	PrefixWorkshop   = "WSP_"
	PrefixLine       = "LNE_"
	PrefixBreakpoint = "BPT_"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewID returns a random identifier with the given type prefix.
func NewID(prefix string) string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return prefix + string(b)
}

// packagingNumber builds the human-readable packaging number from type and
// dimensions: "A 1340-560-440" for non-returnable, "B 1340-560-440" otherwise.
func packagingNumber(ptype PackagingType, length, width, height int16) string {
	prefix := "B"
	if ptype == PackagingNonReturnable {
		prefix = "A"
	}
	return fmt.Sprintf("%s %d-%d-%d", prefix, length, width, height)
}
