//go:build !containeru64

package profiling

// Container is the unsigned integer type backing Instant and Duration.
// The default is uint32; build with the "containeru64" tag to widen it
// to uint64 for long-running spans.
type Container = uint32

// ContainerBits is the width of Container in bits.
const ContainerBits = 32
