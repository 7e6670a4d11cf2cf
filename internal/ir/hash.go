package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainTable is the domain prefix for table hashes.
// The version suffix allows a future change of canonical form.
const DomainTable = "uom/table/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// TableHash computes the content-addressed identity of a table.
// Tables that differ only in Source hash equal.
func TableHash(t *Table) (string, error) {
	canonical, err := MarshalCanonical(t)
	if err != nil {
		return "", fmt.Errorf("TableHash: failed to marshal: %w", err)
	}
	return "sha256:" + hashWithDomain(DomainTable, canonical), nil
}
