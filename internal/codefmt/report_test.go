package codefmt_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumorph/internal/codefmt"
)

func TestReportEmpty(t *testing.T) {
	var r codefmt.Report
	assert.Equal(t, 0, r.Len())
	assert.NoError(t, r.Err())

	r.Add(nil)
	assert.NoError(t, r.Err())
}

func TestReportKeepsOrder(t *testing.T) {
	var r codefmt.Report
	r.Add(codefmt.Errorf(pkger{}, poser{5}, "second"))
	r.Add(codefmt.Errorf(pkger{}, poser{1}, "first"))
	r.Add(codefmt.Errorf(pkger{}, poser{1}, "first"))

	require.Equal(t, 3, r.Len())
	assert.Equal(t, "test.go:1:5: second\ntest.go:1:1: first\ntest.go:1:1: first", r.Err().Error())
}

func TestReportFlattens(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	c := errors.New("c")

	var r codefmt.Report
	r.Add(errors.Join(a, errors.Join(b, c)))

	assert.Equal(t, []error{a, b, c}, r.Errors())
	assert.ErrorIs(t, r.Err(), b)

	u, ok := r.Err().(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, u.Unwrap(), 3)
}

func TestReportKinds(t *testing.T) {
	var r codefmt.Report
	r.Add(codefmt.KindErrorf(pkger{}, errTest, poser{1}, "kinded"))
	r.Add(errors.New("plain"))
	assert.ErrorIs(t, r.Err(), errTest)
}

func TestReportSortByPosition(t *testing.T) {
	var r codefmt.Report
	r.Add(codefmt.Errorf(pkger{}, poser{9}, "late"))
	r.Add(errors.New("no position"))
	r.Add(codefmt.Errorf(pkger{}, poser{2}, "early"))
	r.Add(codefmt.Errorf(pkger{}, poser{int(token.NoPos)}, "invalid position"))

	r.SortByPosition()
	assert.Equal(t, "no position\ninvalid position\ntest.go:1:2: early\ntest.go:1:9: late", r.Err().Error())
}
