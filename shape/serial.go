//go:build !hexcore_noserial

package shape

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/hexcore/hex"
)

// A shape serializes as its sorted member list.

func (s *Shape) MarshalJSON() ([]byte, error) { return json.Marshal(s.Coords()) }

func (s *Shape) UnmarshalJSON(b []byte) error {
	var coords []hex.Axial
	if err := json.Unmarshal(b, &coords); err != nil {
		return err
	}
	*s = *New(coords...)
	return nil
}

func (s *Shape) MarshalYAML() (interface{}, error) { return s.Coords(), nil }

func (s *Shape) UnmarshalYAML(value *yaml.Node) error {
	var coords []hex.Axial
	if err := value.Decode(&coords); err != nil {
		return err
	}
	*s = *New(coords...)
	return nil
}
