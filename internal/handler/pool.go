package handler

import (
	"bytes"
	"sync"
)

// bufferPool reuses encode buffers. Responses that carry a revealed pack or a
// full collection are a few KB, so buffers start at 4KB.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
