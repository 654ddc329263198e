// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UtilTestSuite struct {
	suite.Suite
}

func TestRunUtilTestSuite(t *testing.T) {
	suite.Run(t, new(UtilTestSuite))
}

func (s *UtilTestSuite) Test_IsAssetID_Valid() {
	s.True(IsAssetID(strings.Repeat("0A", 32)))
}

func (s *UtilTestSuite) Test_IsAssetID_WrongLength() {
	s.False(IsAssetID("00081388"))
}

func (s *UtilTestSuite) Test_IsAssetID_NotHex() {
	s.False(IsAssetID(strings.Repeat("Z", 64)))
}

func (s *UtilTestSuite) Test_FormatUnits_WholeAmount() {
	s.Equal("2", FormatUnits(big.NewInt(2000000), 6))
}

func (s *UtilTestSuite) Test_FormatUnits_Fraction() {
	wei, _ := new(big.Int).SetString("3750000000000000", 10)

	s.Equal("0.00375", FormatUnits(wei, 18))
}

func (s *UtilTestSuite) Test_FormatUnits_Negative() {
	s.Equal("-1.5", FormatUnits(big.NewInt(-1500000), 6))
}

func (s *UtilTestSuite) Test_FormatUnits_Nil() {
	s.Equal("0", FormatUnits(nil, 18))
}
