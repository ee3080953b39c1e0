package combat

// LayerMask selects which kinds of bodies a world query considers.
type LayerMask uint32

const (
	LayerPlayer LayerMask = 1 << iota
	LayerEnemy
	LayerEnemyProjectile
)

// CombineLayerMask merges several masks into one.
func CombineLayerMask(masks ...LayerMask) LayerMask {
	var m LayerMask
	for _, mask := range masks {
		m |= mask
	}
	return m
}

// Has reports whether every bit of layer is set in m.
func (m LayerMask) Has(layer LayerMask) bool {
	return layer != 0 && m&layer == layer
}
