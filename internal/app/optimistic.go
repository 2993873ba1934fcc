package app

// applyOptimistic runs the optimistic-mutation protocol: apply the change to
// local state immediately, invoke the backing call, and restore the snapshot
// when the call fails. The restore is a full replace of the snapshotted
// state, never a merge. The commit error is returned unchanged so the caller
// can notify.
func applyOptimistic[S any](snapshot S, apply func(), commit func() error, restore func(S)) error {
	apply()
	if err := commit(); err != nil {
		restore(snapshot)
		return err
	}
	return nil
}
