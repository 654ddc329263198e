// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains_test

import (
	"strings"
	"testing"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/stretchr/testify/suite"
)

type MetadataTestSuite struct {
	suite.Suite
}

func TestRunMetadataTestSuite(t *testing.T) {
	suite.Run(t, new(MetadataTestSuite))
}

func (s *MetadataTestSuite) Test_Encode_MixedAttributes() {
	m := &chains.AssetMetadata{
		Name:        "Dog #1",
		Description: "good dog",
		Image:       "ipfs://QmImage",
		Attributes: []chains.Attribute{
			{TraitType: "breed", Value: chains.StringValue("corgi")},
			{TraitType: "level", Value: chains.NumberValue(5)},
		},
	}

	data, err := m.Encode()

	s.Nil(err)
	s.Equal(`{"name":"Dog #1","description":"good dog","image":"ipfs://QmImage","attributes":[{"trait_type":"breed","value":"corgi"},{"trait_type":"level","value":5}]}`, string(data))
}

func (s *MetadataTestSuite) Test_Encode_NoAttributes() {
	m := &chains.AssetMetadata{Name: "Dog"}

	data, err := m.Encode()

	s.Nil(err)
	s.Contains(string(data), `"attributes":[]`)
}

func (s *MetadataTestSuite) Test_DecodeMetadata_PreservesValueKinds() {
	m, err := chains.DecodeMetadata([]byte(`{"name":"Dog","attributes":[{"trait_type":"speed","value":1.5},{"trait_type":"coat","value":"red"}]}`))

	s.Nil(err)
	s.True(m.Attributes[0].Value.IsNumber())
	s.Equal(1.5, m.Attributes[0].Value.Number())
	s.False(m.Attributes[1].Value.IsNumber())
	s.Equal("red", m.Attributes[1].Value.String())
}

func (s *MetadataTestSuite) Test_DecodeMetadata_InvalidValue() {
	_, err := chains.DecodeMetadata([]byte(`{"name":"Dog","attributes":[{"trait_type":"x","value":true}]}`))

	s.NotNil(err)
}

func (s *MetadataTestSuite) Test_DecodeMetadata_MissingName() {
	_, err := chains.DecodeMetadata([]byte(`{"description":"nameless"}`))

	s.NotNil(err)
}

func (s *MetadataTestSuite) Test_Validate() {
	tests := []struct {
		metadata chains.AssetMetadata
		valid    bool
	}{
		{chains.AssetMetadata{Name: "Dog", Image: "https://img.example/1.png"}, true},
		{chains.AssetMetadata{Name: ""}, false},
		{chains.AssetMetadata{Name: strings.Repeat("a", chains.MaxNameLength+1)}, false},
		{chains.AssetMetadata{Name: "Dog", Description: strings.Repeat("a", chains.MaxDescriptionLength+1)}, false},
		{chains.AssetMetadata{Name: "Dog", Image: "not a url"}, false},
		{chains.AssetMetadata{Name: "Dog", Attributes: []chains.Attribute{{Value: chains.NumberValue(1)}}}, false},
	}

	for _, t := range tests {
		err := t.metadata.Validate()
		s.Equal(t.valid, err == nil, t.metadata.Name)
		if err != nil {
			s.Equal(chains.ValidationErrorCode, chains.ErrorCode(err))
		}
	}
}
