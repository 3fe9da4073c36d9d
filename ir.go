package pronto

// Encoder is the shared contract every encode/ subpackage's Frame type
// implements — the generalization of the teacher's FrameMarshaller,
// adapted from returning a slice of mark/space durations to returning
// a Body of master-clock cycle counts, since a Pronto code is cycles
// against a prescaled clock rather than wall-clock durations.
type Encoder interface {
	Encode(Context) (Body, error)
}
