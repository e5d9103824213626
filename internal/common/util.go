package common

// WipeByteArray zeroes b in place. Use it on secrets read from the terminal
// once they have been copied where they are needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
