//go:build !pegasus_debug

package narrowphase

// protocolState is a no-op in release builds; see debug.go for the
// debug-tagged phase assertion it stands in for.
type protocolState struct{}

func (s *protocolState) assertTest()          {}
func (s *protocolState) assertContactNormal() {}
func (s *protocolState) assertPenetration()   {}
