package bytesize

import (
	"math/rand"
	"reflect"
)

// Generate implements testing/quick.Generator. A uniform draw over uint64
// almost never lands below a petabyte, so the bit width is drawn first to
// spread values across every unit magnitude.
func (ByteCount) Generate(r *rand.Rand, _ int) reflect.Value {
	bits := uint(r.Intn(64) + 1)
	v := r.Uint64() >> (64 - bits)
	return reflect.ValueOf(ByteCount(v))
}
