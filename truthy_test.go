package categories_test

import (
	"testing"

	"github.com/doctaphred/categories"
	"github.com/stretchr/testify/suite"
)

type TruthyTestSuite struct {
	suite.Suite
}

func (s *TruthyTestSuite) TestTruthy() {
	var nilPtr *int
	var nilFunc func()
	var nilSlice []int
	one := 1

	for _, v := range []interface{}{true, 1, -1, uint(1), 0.5, complex(0, 1), "a", []int{0}, map[int]int{0: 0}, [1]int{}, &one, func() {}, struct{}{}} {
		s.True(categories.Truthy(v), "%#v should be truthy", v)
	}
	for _, v := range []interface{}{nil, false, 0, uint8(0), 0.0, complex(0, 0), "", []int{}, nilSlice, map[int]int{}, [0]int{}, nilPtr, nilFunc} {
		s.False(categories.Truthy(v), "%#v should be falsy", v)
	}
}

func (s *TruthyTestSuite) TestTruthy_NamedTypes() {
	type flag bool
	type count int
	s.True(categories.Truthy(flag(true)))
	s.False(categories.Truthy(flag(false)))
	s.False(categories.Truthy(count(0)))
}

func TestTruthy(t *testing.T) {
	suite.Run(t, new(TruthyTestSuite))
}
