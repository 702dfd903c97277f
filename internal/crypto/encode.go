package crypto

import "encoding/hex"

// Hex returns exact lowercase hex of the raw bytes. Both the published
// commitment tag and the revealed key are surfaced in this form.
func Hex(b []byte) string { return hex.EncodeToString(b) }
