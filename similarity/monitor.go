package similarity

// ClusterMonitor receives callbacks while k-means runs.
type ClusterMonitor interface {
	Start(symbols []string, k int)
	AfterSeeding(centroids [][]float32)
	AfterIteration(iteration int, moved int)
	Finish(clusters Clusters, iterations int)
}

// noopMonitor is a no-op implementation of ClusterMonitor
type noopMonitor struct{}

var _ ClusterMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []string, _ int)     {}
func (n *noopMonitor) AfterSeeding(_ [][]float32)  {}
func (n *noopMonitor) AfterIteration(_ int, _ int) {}
func (n *noopMonitor) Finish(_ Clusters, _ int)    {}
