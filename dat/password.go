package dat

import "github.com/ChipMcCallahan/CCTools/cctoolserr"

// passwordXOR is the byte password obfuscation used by DAT tag 6. The
// source table-drives this via DATConstants.ENCRYPTED_CHARS (26 entries,
// one per uppercase letter); that table is exactly byte XOR 0x99 for every
// entry (e.g. 'A' (0x41) XOR 0x99 = 0xD8, ENCRYPTED_CHARS[0]), so this
// simplifies to a single XOR rather than porting the lookup table.
const passwordXOR = 0x99

// decodePassword reverses the obfuscation on a stored password (no
// terminating NUL — the caller strips it before calling).
func decodePassword(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = c ^ passwordXOR
	}
	return string(out)
}

// encodePassword obfuscates a plaintext password. Every byte must be
// uppercase ASCII ('A'-'Z'); anything else fails with InvalidPassword
// (spec.md §4.6).
func encodePassword(s string) ([]byte, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return nil, &cctoolserr.InvalidPasswordError{Value: c}
		}
		out[i] = c ^ passwordXOR
	}
	return out, nil
}
