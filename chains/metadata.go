// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
)

// AttributeValue is either a string or a number.
type AttributeValue struct {
	str   string
	num   float64
	isNum bool
}

func StringValue(s string) AttributeValue {
	return AttributeValue{str: s}
}

func NumberValue(n float64) AttributeValue {
	return AttributeValue{num: n, isNum: true}
}

func (v AttributeValue) IsNumber() bool {
	return v.isNum
}

func (v AttributeValue) Number() float64 {
	return v.num
}

func (v AttributeValue) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

func (v AttributeValue) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("attribute value must be a string or a number: %w", err)
	}
	*v = NumberValue(n)
	return nil
}

type Attribute struct {
	TraitType string         `json:"trait_type"`
	Value     AttributeValue `json:"value"`
}

// AssetMetadata is the descriptive document embedded into a minted asset.
type AssetMetadata struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Image        string      `json:"image"`
	Attributes   []Attribute `json:"attributes"`
	ExternalURL  string      `json:"external_url,omitempty"`
	AnimationURL string      `json:"animation_url,omitempty"`
}

func (m *AssetMetadata) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "metadata.name", Reason: "name is required"}
	}
	if len(m.Name) > MaxNameLength {
		return &ValidationError{Field: "metadata.name", Reason: fmt.Sprintf("longer than %d characters", MaxNameLength)}
	}
	if len(m.Description) > MaxDescriptionLength {
		return &ValidationError{Field: "metadata.description", Reason: fmt.Sprintf("longer than %d characters", MaxDescriptionLength)}
	}
	if m.Image != "" {
		if _, err := url.ParseRequestURI(m.Image); err != nil {
			return &ValidationError{Field: "metadata.image", Reason: "must be a URL"}
		}
	}
	for i, a := range m.Attributes {
		if a.TraitType == "" {
			return &ValidationError{Field: fmt.Sprintf("metadata.attributes[%d].trait_type", i), Reason: "trait type is required"}
		}
	}
	return nil
}

// Encode returns the canonical JSON document of the metadata.
func (m *AssetMetadata) Encode() ([]byte, error) {
	if m.Attributes == nil {
		c := *m
		c.Attributes = []Attribute{}
		return json.Marshal(c)
	}
	return json.Marshal(m)
}

// DecodeMetadata parses a metadata document, returning an error when it
// is not a JSON object with a name.
func DecodeMetadata(data []byte) (*AssetMetadata, error) {
	m := &AssetMetadata{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	if m.Name == "" {
		return nil, fmt.Errorf("metadata document has no name")
	}
	return m, nil
}
