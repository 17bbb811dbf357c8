//go:build pegasus_debug

package narrowphase

// phase encodes where a Dispatcher is in its Test -> ContactNormal ->
// Penetration sequence for the pair it was last asked about. It only
// exists in debug builds; release builds trust callers to follow the
// protocol (the package does not retry or log from within the core).
type phase int

const (
	phaseReady phase = iota
	phaseTested
	phaseNormaled
)

type protocolState struct {
	phase phase
}

func (s *protocolState) assertTest() {
	s.phase = phaseTested
}

func (s *protocolState) assertContactNormal() {
	if s.phase < phaseTested {
		panic("narrowphase: ContactNormal called before Test")
	}
	s.phase = phaseNormaled
}

func (s *protocolState) assertPenetration() {
	if s.phase < phaseNormaled {
		panic("narrowphase: Penetration called before ContactNormal")
	}
}
