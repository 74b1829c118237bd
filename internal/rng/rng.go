package rng

// Generator provides a simple random number
// The deck shuffle and the dealer-button draw both run off this interface so
// tests can substitute a scripted sequence.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
