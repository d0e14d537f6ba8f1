// Package categorytest contains shared helpers for testing categories.
package categorytest

import (
	"fmt"
	"regexp"

	"github.com/doctaphred/categories"
	"github.com/stretchr/testify/suite"
)

// Suite represents a type that tests categories.
type Suite struct {
	suite.Suite
}

// A ("Array") is a helper meant to make []interface{} inputs more
// readable. For example, instead of []interface{}{"foo", 1}, you can
// use s.A("foo", 1).
func (s *Suite) A(vs ...interface{}) []interface{} {
	return vs
}

// CTTC => ContainsTrueTestCases
func (s *Suite) CTTC(c categories.Category, trueVs ...interface{}) {
	for _, trueV := range trueVs {
		s.True(s.contains(c, trueV), "%v should contain %#v", c, trueV)
	}
}

// CFTC => ContainsFalseTestCases
func (s *Suite) CFTC(c categories.Category, falseVs ...interface{}) {
	for _, falseV := range falseVs {
		s.False(s.contains(c, falseV), "%v should not contain %#v", c, falseV)
	}
}

// SameMembership asserts that c1 and c2 agree on every one of vs.
func (s *Suite) SameMembership(c1 categories.Category, c2 categories.Category, vs ...interface{}) {
	for _, v := range vs {
		s.Equal(s.contains(c1, v), s.contains(c2, v), "%v and %v disagree on %#v", c1, c2, v)
	}
}

// STC => StringTestCase
func (s *Suite) STC(c categories.Category, expected string) {
	s.Equal(expected, c.String())
}

// SRTC => StringRegexTestCase
func (s *Suite) SRTC(c categories.Category, expectedRegex string) {
	s.Regexp(regexp.MustCompile(expectedRegex), c.String())
}

// contains fails the test if c.Contains panics, since categories must
// never do so.
func (s *Suite) contains(c categories.Category, v interface{}) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			s.Fail(fmt.Sprintf("%v panicked on %#v: %v", c, v, r))
			result = false
		}
	}()
	return c.Contains(v)
}
