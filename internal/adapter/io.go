package adapter

import "io"

// IO defines an interface for draining readers to enable mocking.
// Webhook response bodies are read through this seam so delivery code
// can be tested against read failures without a live connection.
//
//go:generate mockgen -source=io.go -destination=../mocks/io.go -package=mocks -mock_names=IO=MockIO
type IO interface {
	// ReadAll consumes r to EOF. Callers cap r first; only a bounded
	// prefix of a Discord response body is ever kept.
	ReadAll(r io.Reader) ([]byte, error)
}

// RealIO implements IO using the standard io package
type RealIO struct{}

// NewIO creates a new real IO implementation
func NewIO() IO {
	return &RealIO{}
}

func (i *RealIO) ReadAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
