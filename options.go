package glhal

// InstanceOptions configures instance creation across backends.
type InstanceOptions struct {
	// Verify enables opportunistic checks of the context's sticky error
	// indicator after state-changing operations. The query itself stalls
	// the execution pipeline, so verification is an explicit opt-in for
	// debugging rather than a build-mode default; with Verify false,
	// errors are assumed absent unless surfaced by a call's own return
	// value.
	Verify bool
}
