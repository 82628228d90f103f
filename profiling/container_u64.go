//go:build containeru64

package profiling

// Container is the unsigned integer type backing Instant and Duration.
// Selected by the "containeru64" build tag; required for extended-mode
// clock adapters that track counter rollovers.
type Container = uint64

// ContainerBits is the width of Container in bits.
const ContainerBits = 64
