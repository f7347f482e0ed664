package graph

// StructureConfig holds structural analysis parameters
type StructureConfig struct {
	HubThreshold int
	TopN         int
}

// DefaultStructureConfig returns sensible defaults for a 50-node network
func DefaultStructureConfig() *StructureConfig {
	return &StructureConfig{
		HubThreshold: 5,
		TopN:         10,
	}
}

// StructureReport is the structural analysis of one tag network
type StructureReport struct {
	Density  float64         `json:"density"`
	Topology *TopologyReport `json:"topology"`
	Bridges  *BridgeReport   `json:"bridges"`
}

// Analyze runs topology and bridge analysis on a network
func Analyze(net *Network, config *StructureConfig) *StructureReport {
	if config == nil {
		config = DefaultStructureConfig()
	}
	return &StructureReport{
		Density:  Density(net),
		Topology: ComputeTopology(net, config.HubThreshold, config.TopN),
		Bridges:  ComputeBridges(net),
	}
}
