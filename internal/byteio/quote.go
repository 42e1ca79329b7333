package byteio

import "strconv"

// c0Names provides the classic ASCII control mnemonics.
var c0Names = [32]string{
	"<NUL>", "<SOH>", "<STX>", "<ETX>", "<EOT>", "<ENQ>", "<ACK>", "<BEL>",
	"<BS>", "<HT>", "<NL>", "<VT>", "<NP>", "<CR>", "<SO>", "<SI>",
	"<DLE>", "<DC1>", "<DC2>", "<DC3>", "<DC4>", "<NAK>", "<SYN>", "<ETB>",
	"<CAN>", "<EM>", "<SUB>", "<ESC>", "<FS>", "<GS>", "<RS>", "<US>",
}

// Quote returns a printable form of b for logs and dumps:
// - C0 controls and DEL use their mnemonic, e.g. <NUL> or <ESC>
// - space is written as <SP>
// - other ASCII characters are single quoted, e.g. 'A'
// - all other bytes are written in hex, e.g. 0xff
func Quote(b byte) string {
	switch {
	case b < 0x20:
		return c0Names[b]
	case b == 0x20:
		return "<SP>"
	case b == 0x7f:
		return "<DEL>"
	case b < 0x80:
		return strconv.QuoteRune(rune(b))
	}
	return "0x" + strconv.FormatUint(uint64(b), 16)
}
