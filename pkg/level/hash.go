package level

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CanonicalJSON renders l as UTF-8 JSON with object keys sorted
// lexicographically and no insignificant whitespace (spec §4.9 level
// hash). encoding/json already sorts map[string]interface{} keys when
// marshaling, so the struct is round-tripped through a generic map to
// get canonical ordering at every nesting level.
func CanonicalJSON(l *Level) ([]byte, error) {
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("level: marshaling level: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("level: canonicalizing level: %w", err)
	}
	canon, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("level: canonicalizing level: %w", err)
	}
	return canon, nil
}

// Hash computes the level hash: SHA-256 of the level's canonical JSON
// rendering (spec §4.9). The replay header's levelHash field must equal
// this value, hex-encoded, for a replay to be considered valid against l.
func (l *Level) Hash() ([32]byte, error) {
	canon, err := CanonicalJSON(l)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(canon), nil
}

// HashHex is Hash rendered as a lowercase hex string, the form stored in a
// replay header.
func (l *Level) HashHex() (string, error) {
	sum, err := l.Hash()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}
