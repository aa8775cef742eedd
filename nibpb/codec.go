package nibpb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec replaces the "proto" codec grpc-go selects by default when a
// call sets no content-subtype. Registering under that name is grpc-go's
// documented extension point for services whose messages are plain Go
// values rather than protoc-generated proto.Message implementations.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "proto"
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
