package values

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const digestAlgorithm = "sha256"

// Digest is the content hash of a descriptor file.
type Digest struct {
	value string // hex-encoded sha256
}

// DigestOf hashes the raw descriptor bytes.
func DigestOf(data []byte) Digest {
	sum := sha256.Sum256(data)
	return Digest{value: hex.EncodeToString(sum[:])}
}

// ParseDigest parses a digest string (e.g., "sha256:abc123...").
func ParseDigest(s string) (Digest, error) {
	algorithm, value, ok := strings.Cut(s, ":")
	if !ok || value == "" {
		return Digest{}, fmt.Errorf("invalid digest format: %s", s)
	}
	if algorithm != digestAlgorithm {
		return Digest{}, fmt.Errorf("unsupported digest algorithm: %s", algorithm)
	}
	return Digest{value: value}, nil
}

// String returns the canonical "sha256:<hex>" form, or "" for the zero digest.
func (d Digest) String() string {
	if d.IsZero() {
		return ""
	}
	return digestAlgorithm + ":" + d.value
}

// Value returns the hex-encoded hash.
func (d Digest) Value() string {
	return d.value
}

// IsZero reports whether no digest has been computed.
func (d Digest) IsZero() bool {
	return d.value == ""
}

// Equals checks equality with another digest.
func (d Digest) Equals(other Digest) bool {
	return d.value == other.value
}
