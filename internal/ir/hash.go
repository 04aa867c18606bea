package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainPlan is the domain prefix for serialized plan document hashes.
// The version suffix allows a future change of the document layout to
// produce disjoint hashes.
const DomainPlan = "relalg/plan/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// HashDocument returns the content address of an already serialized
// canonical document.
func HashDocument(doc []byte) string {
	return hashWithDomain(DomainPlan, doc)
}

// PlanHash computes the content address of a document value.
// Two plans hash equal exactly when they serialize to the same bytes.
func PlanHash(doc IRObject) (string, error) {
	canonical, err := MarshalCanonical(doc)
	if err != nil {
		return "", fmt.Errorf("PlanHash: failed to marshal: %w", err)
	}
	return HashDocument(canonical), nil
}
