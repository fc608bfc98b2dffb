// Package reconcile implements the optimistic-update pattern used by
// interactive features: apply a speculative local change, issue the
// authoritative call, and on failure deterministically restore the
// exact pre-change state.
package reconcile

// Run applies speculate to state, then runs commit. If commit fails the
// state is restored to a copy captured before speculate ran and the
// commit error is returned. S must be a value type (or a struct whose
// shallow copy is sufficient to restore it).
func Run[S any](state *S, speculate func(*S), commit func() error) error {
	prior := *state
	speculate(state)
	if err := commit(); err != nil {
		*state = prior
		return err
	}
	return nil
}
