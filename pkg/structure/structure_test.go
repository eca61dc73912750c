package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegen-io/stylegen/pkg/structure"
)

func TestPxAdjust(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value int
		scale int
		want  int
	}{
		"BaselineIsIdentity":  {value: 8, scale: 100, want: 8},
		"RoundsHalfUp":        {value: 10, scale: 125, want: 13},
		"ExactMultiple":       {value: 8, scale: 150, want: 12},
		"Double":              {value: 8, scale: 200, want: 16},
		"OneAndHalfOfTen":     {value: 10, scale: 150, want: 15},
		"NegativePreserved":   {value: -12, scale: 150, want: -18},
		"NegativeRoundsAway":  {value: -10, scale: 125, want: -13},
		"ZeroStaysZero":       {value: 0, scale: 200, want: 0},
		"SmallValueRoundsUp":  {value: 1, scale: 150, want: 2},
		"SmallValueRoundsOff": {value: 1, scale: 125, want: 1},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, structure.PxAdjust(tc.value, tc.scale))
		})
	}
}

func TestModuleBaseName(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		filePath string
		want     string
	}{
		"Palette":     {filePath: "colors.palette", want: "palette"},
		"Style":       {filePath: "basic.style", want: "style_basic"},
		"CamelStyle":  {filePath: "overviewWidgets.style", want: "style_overview_widgets"},
		"NestedStyle": {filePath: "gui/dialogs.style", want: "style_dialogs"},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := structure.NewModule(tc.filePath)
			assert.Equal(t, tc.want, m.BaseName())
		})
	}
}

func TestModuleLookup(t *testing.T) {
	t.Parallel()

	included := structure.NewModule("base.style")
	require.NoError(t, included.AddStruct(structure.Struct{
		Name: structure.FullName{"Toggle"},
		Fields: []structure.Field{
			{Name: structure.FullName{"duration"}, Type: structure.Type{Tag: structure.TagInt}},
		},
	}))
	require.NoError(t, included.AddVariable(structure.Variable{
		Name:  structure.FullName{"defaultDuration"},
		Value: structure.IntValue(structure.TagInt, 120),
	}))

	m := structure.NewModule("dialogs.style")
	m.AddInclude(included)
	require.NoError(t, m.AddVariable(structure.Variable{
		Name:  structure.FullName{"boxPadding"},
		Value: structure.IntValue(structure.TagPixels, 12),
	}))

	_, ok := m.LocalStruct(structure.FullName{"Toggle"})
	assert.False(t, ok, "struct lives in the include, not locally")

	s, ok := m.FindStruct(structure.FullName{"Toggle"})
	require.True(t, ok)
	assert.Len(t, s.Fields, 1)

	v, ok := m.FindVariable(structure.FullName{"defaultDuration"})
	require.True(t, ok)
	assert.Equal(t, 120, v.Value.Int())

	_, ok = m.FindVariable(structure.FullName{"missing"})
	assert.False(t, ok)

	err := m.AddVariable(structure.Variable{
		Name:  structure.FullName{"boxPadding"},
		Value: structure.IntValue(structure.TagPixels, 10),
	})
	require.Error(t, err)
}

func TestValueClone(t *testing.T) {
	t.Parallel()

	inner := structure.Variable{
		Name:  structure.FullName{"textFg"},
		Value: structure.ColorValue(structure.Color{Red: 10, Green: 20, Blue: 30, Alpha: 255}),
	}
	value := structure.StructValue(structure.FullName{"Label"}, []structure.FieldValue{{
		Field:    structure.Field{Name: structure.FullName{"textFg"}, Type: structure.Type{Tag: structure.TagColor}},
		Variable: inner,
	}})

	clone := value.Clone()
	cloned := clone.Fields()
	require.Len(t, cloned, 1)
	assert.Equal(t, uint8(10), cloned[0].Variable.Value.Color().Red)

	// The clone must not share field storage with the original.
	cloned[0].Variable.Value = structure.ColorValue(structure.Color{Red: 99})
	assert.Equal(t, uint8(10), value.Fields()[0].Variable.Value.Color().Red)
}

func TestValueAlias(t *testing.T) {
	t.Parallel()

	v := structure.CopyOfValue(structure.Type{Tag: structure.TagColor}, structure.FullName{"windowBg"})
	assert.True(t, v.IsCopy())
	assert.Equal(t, "windowBg", v.CopyOf().Back())
	assert.Equal(t, structure.TagColor, v.Type().Tag)

	literal := structure.IntValue(structure.TagPixels, 4)
	assert.False(t, literal.IsCopy())
}
