package contest

// Decider picks the winner of a competition between a and b.
// Implementations must return either a or b.
type Decider interface {
	PickWinner(a, b string) string
}

// DeciderFunc adapts a plain function to the Decider interface.
type DeciderFunc func(a, b string) string

func (f DeciderFunc) PickWinner(a, b string) string { return f(a, b) }

// Fixed returns a Decider that always picks winner when it takes part in
// the competition, and a otherwise.
func Fixed(winner string) Decider {
	return DeciderFunc(func(a, b string) string {
		if winner == b {
			return b
		}
		return a
	})
}
