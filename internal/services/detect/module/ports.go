package module

import dom "wordlang/internal/services/detect/domain"

// Ports holds the ports exposed by the detect module
type Ports struct {
	Detector dom.DetectorPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
