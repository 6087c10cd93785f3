package dx7

import "strings"

// Voice names are stored as HD44780-style LCD character codes, not text.
// The translation is lossy: codes without a close glyph map to "~" (or a
// space in the ASCII table).

var lcdTableUnicode = [256]string{
	"₁", "₂", "₃", "₄", "₅", "₆", "₇", "₈", "₁", "₂", "₃", "₄", "₅", "₆", "₇", "₈", // 0x00
	" ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", // 0x10
	" ", "!", "\"", "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", "-", ".", "/", // 0x20
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ":", ";", "<", "=", ">", "?", // 0x30
	"@", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", // 0x40
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "[", "¥", "]", "^", "_", // 0x50
	"`", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", // 0x60
	"p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "{", "|", "}", "→", "←", // 0x70
	" ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", // 0x80
	" ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", " ", // 0x90
	" ", "∘", "⌈", "⌋", "~", "⋅", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", // 0xA0
	"-", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", // 0xB0
	"~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", // 0xC0
	"~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "~", "°", // 0xD0
	"∝", "ä", "ß", "ε", "μ", "σ", "ρ", "g", "√", "~", "j", "×", "¢", "₤", "ñ", "ö", // 0xE0
	"p", "q", "ϴ", "∞", "Ω", "ü", "Σ", "π", "ẍ", "y", "~", "~", "~", "÷", " ", "█", // 0xF0
}

var lcdTableAscii = [128]byte{
	' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', // 0x00
	' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', // 0x10
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', // 0x20
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', // 0x30
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', // 0x40
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', 'Y', ']', '^', '_', // 0x50
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', // 0x60
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '>', '<', // 0x70
}

// LCDToUnicode translates raw LCD name bytes to a display string using
// the multi-glyph Unicode table.
func LCDToUnicode(name []byte) string {
	var sb strings.Builder
	for _, b := range name {
		sb.WriteString(lcdTableUnicode[b])
	}
	return sb.String()
}

// LCDToASCII translates raw LCD name bytes to a 7-bit ASCII string.
// Codes above 0x7F have no ASCII form and become spaces.
func LCDToASCII(name []byte) string {
	out := make([]byte, len(name))
	for i, b := range name {
		if b < 0x80 {
			out[i] = lcdTableAscii[b]
		} else {
			out[i] = ' '
		}
	}
	return string(out)
}

// LCDName selects the Unicode or ASCII translation.
func LCDName(name []byte, unicode bool) string {
	if unicode {
		return LCDToUnicode(name)
	}
	return LCDToASCII(name)
}
