package common

// WipeByteArray overwrites the contents of b with zeroes. Used to clear
// password buffers once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
