package gilded

import (
	"github.com/bytedance/sonic"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// jsonFormat implements Format for JSON using sonic.
type jsonFormat struct{}

var _ Format = (*jsonFormat)(nil)

// JSON returns the JSON wire format. It is the default for new schemas.
func JSON() Format {
	return &jsonFormat{}
}

func (*jsonFormat) ContentType() string {
	return "application/json"
}

func (*jsonFormat) Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

func (*jsonFormat) Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// yamlFormat implements Format for YAML.
type yamlFormat struct{}

var _ Format = (*yamlFormat)(nil)

// YAML returns the YAML wire format.
func YAML() Format {
	return &yamlFormat{}
}

func (*yamlFormat) ContentType() string {
	return "application/yaml"
}

func (*yamlFormat) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (*yamlFormat) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// msgpackFormat implements Format for MessagePack.
type msgpackFormat struct{}

var _ Format = (*msgpackFormat)(nil)

// Msgpack returns the MessagePack wire format.
func Msgpack() Format {
	return &msgpackFormat{}
}

func (*msgpackFormat) ContentType() string {
	return "application/msgpack"
}

func (*msgpackFormat) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (*msgpackFormat) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
