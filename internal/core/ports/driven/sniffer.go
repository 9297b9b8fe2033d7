package driven

// EncodingSniffer guesses the text encoding of a byte source from its head.
// The guess is purely advisory: the sample reader layers a decode-fallback
// cascade on top of it and never trusts the sniffed name blindly.
type EncodingSniffer interface {
	// Sniff inspects up to the first domain.SniffBytes bytes of a source and
	// returns a best-guess encoding name and a confidence in [0, 1].
	// Sniff is a pure function over the bytes it is given.
	Sniff(head []byte) (name string, confidence float64, err error)
}
