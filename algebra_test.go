package categories_test

import (
	"math"
	"testing"

	"github.com/doctaphred/categories"
	"github.com/doctaphred/categories/internal/categorytest"
	"github.com/stretchr/testify/suite"
)

// AlgebraTestSuite checks the boolean laws over a mix of predicates and
// candidate values, including values the predicates cannot handle.
type AlgebraTestSuite struct {
	categorytest.Suite
	ps []categories.Category
	vs []interface{}
}

func (s *AlgebraTestSuite) SetupTest() {
	s.ps = []categories.Category{
		categories.Type[int](),
		categories.Values.Lt(10),
		categories.Values.Eq("a"),
		categories.Has.Attr("len"),
		categories.Universal,
		categories.Nothing,
		categories.Type[int]().Or(categories.Type[float64]()),
	}
	s.vs = s.A(nil, 0, 2, 20, 2.0, math.NaN(), "a", "b", []int{}, map[string]int{}, struct{}{})
}

func (s *AlgebraTestSuite) TestBinaryOperators() {
	for _, p := range s.ps {
		for _, q := range s.ps {
			for _, v := range s.vs {
				inP, inQ := p.Contains(v), q.Contains(v)
				s.Equal(inP && inQ, categories.And(p, q).Contains(v), "%v and %v on %#v", p, q, v)
				s.Equal(inP || inQ, categories.Or(p, q).Contains(v), "%v or %v on %#v", p, q, v)
				s.Equal(!(inP && inQ), categories.Xor(p, q).Contains(v), "%v xor %v on %#v", p, q, v)
			}
		}
	}
}

func (s *AlgebraTestSuite) TestNotIsInvolutive() {
	for _, p := range s.ps {
		s.SameMembership(categories.Not(categories.Not(p)), p, s.vs...)
		for _, v := range s.vs {
			s.Equal(!p.Contains(v), categories.Not(p).Contains(v), "not %v on %#v", p, v)
		}
	}
}

func (s *AlgebraTestSuite) TestAssociativity() {
	for _, p := range s.ps {
		for _, q := range s.ps {
			for _, r := range s.ps {
				s.SameMembership(categories.And(categories.And(p, q), r), categories.And(p, categories.And(q, r)), s.vs...)
				s.SameMembership(categories.Or(categories.Or(p, q), r), categories.Or(p, categories.Or(q, r)), s.vs...)
			}
		}
	}
}

func (s *AlgebraTestSuite) TestScenarios() {
	isInt := categories.Type[int]()
	s.CTTC(isInt, 1)
	s.CFTC(isInt, 1.0)

	isFloat := categories.Type[float64]()
	numbers := isInt.Or(isFloat)
	s.CTTC(numbers, 1, 1.0)
	s.CFTC(numbers, "a")

	lt10 := categories.Values.Lt(10)
	s.CTTC(lt10, 2)
	s.CFTC(lt10, 20)
	s.STC(lt10, "lt(value, 10)")
	s.CFTC(categories.Values.Lt(1), 2)

	combo := isInt.And(lt10)
	s.CTTC(combo, 2)
	s.CFTC(combo, 2.0)
	s.CTTC(numbers.And(lt10), 2.0)
	s.CFTC(numbers.And(lt10), "waddup")
	s.CFTC(numbers.Or(lt10), "waddup")
	s.CTTC(numbers.Or(lt10).Or(categories.Universal), "waddup")
	s.STC(combo, "all({isinstance(value, int), lt(value, 10)})")

	hasLen := categories.Has.Attr("len")
	s.CTTC(hasLen, []int{})
	s.CFTC(hasLen, &iterator{})

	sequenceLike := categories.Has.All("len", "range", "index", "slice", "cap")
	s.CTTC(sequenceLike, []int{})
	s.CFTC(sequenceLike, map[string]int{}, map[int]struct{}{})
}

func TestAlgebra(t *testing.T) {
	suite.Run(t, new(AlgebraTestSuite))
}
