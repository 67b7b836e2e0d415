package structs

import (
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/values/sizes"
)

// maxPooledBuffer is the largest buffer returned to bufferPool. Larger ones are left to
// the garbage collector so one huge message does not pin memory.
const maxPooledBuffer = int(1 * sizes.MiB)

// bufferPool holds serialization buffers for WriteDelimited.
var bufferPool = sync.NewPool[*[]byte](
	context.Background(),
	"delimitedBufferPool",
	func() *[]byte {
		b := make([]byte, 0, 4*sizes.KiB)
		return &b
	},
	sync.WithBuffer(100),
)

func getBuffer(ctx context.Context) *[]byte {
	b := bufferPool.Get(ctx)
	*b = (*b)[:0]
	return b
}

func putBuffer(ctx context.Context, b *[]byte) {
	if cap(*b) > maxPooledBuffer {
		return
	}
	bufferPool.Put(ctx, b)
}
