package factory

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"
)

var ErrUnknownFormat = errors.New("factory: unknown format")

// Serializer 序列化接口，具体格式由工厂决定
type Serializer interface {
	Serialize(data interface{}) (string, error)
}

type JSONSerializer struct{}

func (JSONSerializer) Serialize(data interface{}) (string, error) {
	b, err := json.Marshal(map[string]interface{}{"data": data})
	if err != nil {
		return "", err
	}
	return "JSON representation : " + string(b), nil
}

type xmlPayload struct {
	XMLName xml.Name `xml:"data"`
	Value   string   `xml:",chardata"`
}

type XMLSerializer struct{}

func (XMLSerializer) Serialize(data interface{}) (string, error) {
	b, err := xml.Marshal(xmlPayload{Value: fmt.Sprint(data)})
	if err != nil {
		return "", err
	}
	return "XML representation: " + string(b), nil
}

type YAMLSerializer struct{}

func (YAMLSerializer) Serialize(data interface{}) (string, error) {
	b, err := yaml.Marshal(map[string]interface{}{"data": data})
	if err != nil {
		return "", err
	}
	return "YAML representation:\n" + string(b), nil
}

// GetSerializer 按格式名返回序列化器
func GetSerializer(format string) (Serializer, error) {
	switch format {
	case "json":
		return JSONSerializer{}, nil
	case "xml":
		return XMLSerializer{}, nil
	case "yaml":
		return YAMLSerializer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
