package productv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the grpc content-subtype under which the JSON codec is
// registered.
const CodecName = "json"

// Codec marshals productv1 messages as JSON. The server forces it via
// grpc.ForceServerCodec; clients select it per call with
// grpc.CallContentSubtype(CodecName).
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("productv1 codec: %w", err)
	}
	return nil
}

func (Codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
