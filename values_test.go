package categories_test

import (
	"math"
	"testing"
	"time"

	"github.com/doctaphred/categories"
	"github.com/doctaphred/categories/internal/categorytest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ValuesTestSuite struct {
	categorytest.Suite
}

func (s *ValuesTestSuite) TestEq() {
	s.CTTC(categories.Values.Eq(1), 1, 1.0, int8(1), uint(1), decimal.New(1, 0))
	s.CFTC(categories.Values.Eq(1), 2, "1", true, nil, math.NaN())
	s.CTTC(categories.Values.Eq("a"), "a")
	s.CFTC(categories.Values.Eq("a"), "b", 'a')
	s.CTTC(categories.Values.Eq(nil), nil)
	s.CFTC(categories.Values.Eq(nil), 0, "")
	s.CTTC(categories.Values.Eq([]int{1}), []int{1})
}

func (s *ValuesTestSuite) TestNe() {
	s.CTTC(categories.Values.Ne(1), 2, "1", nil, math.NaN())
	s.CFTC(categories.Values.Ne(1), 1, 1.0)
	s.CTTC(categories.Values.Ne(math.NaN()), math.NaN())
}

func (s *ValuesTestSuite) TestOrdering() {
	s.CTTC(categories.Values.Lt(10), 2, 9.5, int64(-100), uint8(0), math.Inf(-1))
	s.CFTC(categories.Values.Lt(10), 10, 20, "a", nil, math.NaN(), math.Inf(1))

	s.CTTC(categories.Values.Le(10), 10, 10.0, 9)
	s.CFTC(categories.Values.Le(10), 10.5)

	s.CTTC(categories.Values.Gt(10), 11, 10.5, uint64(math.MaxUint64))
	s.CFTC(categories.Values.Gt(10), 10, 9, "z")

	s.CTTC(categories.Values.Ge(10), 10, 11)
	s.CFTC(categories.Values.Ge(10), 9)

	s.CTTC(categories.Values.Lt("b"), "a", "B")
	s.CFTC(categories.Values.Lt("b"), "b", "c", 1)
	s.CFTC(categories.Values.Lt([]int{2}), []int{1}, []int{3})
	s.CTTC(categories.Values.Eq([]int{2}), []int{2})
}

func (s *ValuesTestSuite) TestOrdering_Times() {
	t := time.Unix(1000, 0)
	s.CTTC(categories.Values.Lt(t), time.Unix(999, 0))
	s.CFTC(categories.Values.Lt(t), t, time.Unix(1001, 0), 999)
	s.CTTC(categories.Values.Eq(t), t.UTC())
}

func (s *ValuesTestSuite) TestCompare() {
	s.CTTC(categories.Values.Compare(categories.GTE, 3), 3, 4)
	s.CFTC(categories.Values.Compare("~", 3), 3, 4)
	s.STC(categories.Values.Compare("~", 3), "~(value, 3)")
}

func (s *ValuesTestSuite) TestString() {
	s.STC(categories.Values.Lt(10), "lt(value, 10)")
	s.STC(categories.Values.Le(10), "le(value, 10)")
	s.STC(categories.Values.Gt(10), "gt(value, 10)")
	s.STC(categories.Values.Ge(10), "ge(value, 10)")
	s.STC(categories.Values.Eq("a"), "eq(value, a)")
	s.STC(categories.Values.Ne(nil), "ne(value, <nil>)")
}

func (s *ValuesTestSuite) TestGlob() {
	type filename string
	goFiles := categories.Values.Glob("*.go")
	s.CTTC(goFiles, "main.go", filename("fold.go"))
	s.CFTC(goFiles, "main.py", 1, nil, []byte("main.go"))
	s.STC(goFiles, "glob(value, *.go)")

	s.CFTC(categories.Values.Glob("[a-"), "a", "[a-")
}

func TestValues(t *testing.T) {
	suite.Run(t, new(ValuesTestSuite))
}
