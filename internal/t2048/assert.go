package t2048

// assert panics when an internal invariant does not hold. It only runs in
// builds tagged t2048debug; callers guard costly conditions with debugChecks.
func assert(cond bool, msg string) {
	if debugChecks && !cond {
		panic("t2048: internal invariant violated: " + msg)
	}
}
