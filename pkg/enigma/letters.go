package enigma

// alphabetSize is the number of contact positions on every wheel.
const alphabetSize = 26

// letterIndex maps a Latin letter of either case to its alphabet index
// 0..25. The second return is false for anything else.
func letterIndex(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	default:
		return 0, false
	}
}

// indexLetter maps an alphabet index 0..25 to its uppercase letter.
func indexLetter(i int) byte {
	return byte('A' + i)
}

// isLetter reports whether r is a Latin letter of either case.
func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// mod normalizes i into the alphabet range 0..25.
func mod(i int) int {
	i %= alphabetSize
	if i < 0 {
		i += alphabetSize
	}
	return i
}
