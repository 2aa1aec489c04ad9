package lexer

import "strconv"

// parseInt and parseFloat convert a scanned numeric lexeme into the literal
// value stored on the Token. The lexer's own scanning loop already
// guarantees the lexeme is well-formed, so a conversion error here would be
// an internal bug rather than a user-facing one.
func parseInt(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}

func parseFloat(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexeme, 64)
}
