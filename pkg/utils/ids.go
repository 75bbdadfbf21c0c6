package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewRecordID returns a store identity: millisecond timestamp plus a
// random hex suffix. Collision-resistant within a process lifetime;
// not a security boundary.
func NewRecordID() string {
	suffix := make([]byte, 5)
	rand.Read(suffix)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + hex.EncodeToString(suffix)
}
