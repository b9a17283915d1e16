// Package marker provides the fixed value ffilog prints to stdout.
// SPDX-License-Identifier: AGPL-3.0-or-later
package marker

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/sha3"
)

// Literal is keccak256(abi.encode(uint256(0))), 0x-prefixed.
const Literal = "0x290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563"

// Emit writes Literal to w without a trailing newline.
func Emit(w io.Writer) error {
	_, err := io.WriteString(w, Literal)
	return err
}

// Derive returns 0x || hex(keccak256(word)) where word is n ABI-encoded as a
// 32-byte big-endian uint256. Derive(0) == Literal.
//
// ffilog never calls Derive at runtime: stdout is always Literal. Derive
// records where Literal comes from, and the tests check it against Literal.
func Derive(n uint64) string {
	var word [32]byte
	binary.BigEndian.PutUint64(word[24:], n)

	h := sha3.NewLegacyKeccak256()
	h.Write(word[:])
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
