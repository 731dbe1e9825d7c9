package pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) Object {
	t.Helper()
	l := NewLexer([]byte(src))
	obj, err := ParseValue(l)
	require.NoError(t, err)
	return obj
}

func TestParseNumberNotReference(t *testing.T) {
	obj := parseOne(t, "12")
	require.Equal(t, KindNumber, obj.Kind)
	require.Equal(t, 12.0, obj.Number)
}

func TestParseReference(t *testing.T) {
	obj := parseOne(t, "12 0 R")
	require.Equal(t, KindReference, obj.Kind)
	require.Equal(t, Reference{Num: 12, Gen: 0}, obj.Ref)
}

func TestParseTwoNumbersNotAReference(t *testing.T) {
	l := NewLexer([]byte("12 34 /Foo"))
	first, err := ParseValue(l)
	require.NoError(t, err)
	require.Equal(t, KindNumber, first.Kind)
	require.Equal(t, 12.0, first.Number)

	second, err := ParseValue(l)
	require.NoError(t, err)
	require.Equal(t, KindNumber, second.Kind)
	require.Equal(t, 34.0, second.Number)

	third, err := ParseValue(l)
	require.NoError(t, err)
	require.Equal(t, KindName, third.Kind)
}

func TestParseArray(t *testing.T) {
	obj := parseOne(t, "[1 2 /Foo (bar) 4 0 R]")
	require.Equal(t, KindArray, obj.Kind)
	require.Len(t, obj.Array, 5)
	require.Equal(t, KindReference, obj.Array[4].Kind)
}

func TestParseDictBasic(t *testing.T) {
	obj := parseOne(t, "<< /Type /Page /Count 3 /Kids [1 0 R 2 0 R] >>")
	require.Equal(t, KindDict, obj.Kind)
	d := obj.Dict
	name, _ := d["Type"].AsName()
	require.Equal(t, "Page", name)
	n, _ := d["Count"].AsNumber()
	require.Equal(t, 3.0, n)
	kids, _ := d["Kids"].AsArray()
	require.Len(t, kids, 2)
}

func TestParseDictToleratesMalformedKey(t *testing.T) {
	obj := parseOne(t, "<< /Good 1 123 /AlsoGood 2 >>")
	d := obj.Dict
	n1, _ := d["Good"].AsNumber()
	require.Equal(t, 1.0, n1)
	n2, _ := d["AlsoGood"].AsNumber()
	require.Equal(t, 2.0, n2)
}

func TestParseBooleansAndNull(t *testing.T) {
	require.Equal(t, KindBool, parseOne(t, "true").Kind)
	require.True(t, parseOne(t, "true").Bool)
	require.False(t, parseOne(t, "false").Bool)
	require.Equal(t, KindNull, parseOne(t, "null").Kind)
}

func TestParseUnrecognizedByteYieldsNull(t *testing.T) {
	obj := parseOne(t, "{")
	require.Equal(t, KindNull, obj.Kind)
}

func TestParseArraySurvivesStrayByteInside(t *testing.T) {
	obj := parseOne(t, "[1 { 2]")
	require.Equal(t, KindArray, obj.Kind)
	require.Len(t, obj.Array, 3)
	require.Equal(t, 1.0, obj.Array[0].Number)
	require.Equal(t, KindNull, obj.Array[1].Kind)
	require.Equal(t, 2.0, obj.Array[2].Number)
}

func TestParseDictSurvivesStrayByteInside(t *testing.T) {
	obj := parseOne(t, "<< /Good 1 { /AlsoGood 2 >>")
	d := obj.Dict
	n1, _ := d["Good"].AsNumber()
	require.Equal(t, 1.0, n1)
	n2, _ := d["AlsoGood"].AsNumber()
	require.Equal(t, 2.0, n2)
}
