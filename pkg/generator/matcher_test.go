package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegen-io/stylegen/pkg/generator"
)

var matcherNames = map[string]int{
	"windowBg":           0,
	"windowFg":           1,
	"windowBgOver":       2,
	"windowActiveBg":     3,
	"historyPeer1NameFg": 4,
	"historyPeer2NameFg": 5,
	"shadowFg":           6,
}

func TestMatcherLookup(t *testing.T) {
	t.Parallel()

	m := generator.BuildMatcher(matcherNames)

	for name, index := range matcherNames {
		assert.Equal(t, index, m.Lookup(name), name)
	}
}

func TestMatcherLookupNearMisses(t *testing.T) {
	t.Parallel()

	m := generator.BuildMatcher(matcherNames)

	testCases := map[string]string{
		"Empty":             "",
		"Prefix":            "window",
		"TrailingCharDrop":  "windowB",
		"TrailingCharExtra": "windowBgX",
		"InsertedChar":      "windowxBg",
		"CaseDiffers":       "windowbg",
		"Unrelated":         "dialogsBg",
		"LongerSharedStem":  "windowBgOverOver",
	}

	for name, input := range testCases {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, -1, m.Lookup(input))
		})
	}
}

func TestMatcherEmitCpp(t *testing.T) {
	t.Parallel()

	code := generator.BuildMatcher(map[string]int{
		"windowBg": 0,
		"windowFg": 1,
		"shadowFg": 2,
	}).EmitCpp("getPaletteIndex")

	assert.Contains(t, code, "int getPaletteIndex(std::string_view name) {")
	assert.Contains(t, code, "switch (data[0]) {")
	// 'w' sorts after 's', so the descending build emits it first.
	wPos := strings.Index(code, "case 'w':")
	sPos := strings.Index(code, "case 's':")
	require.GreaterOrEqual(t, wPos, 0)
	require.GreaterOrEqual(t, sPos, 0)
	assert.Less(t, wPos, sPos)

	// The branch consumes the divergent byte, so each leaf finishes
	// with a length check plus a compare of any remaining suffix.
	assert.Contains(t, code, "return (size == 8) ? 0 : -1;")
	assert.Contains(t, code, "return (size == 8) ? 1 : -1;")
	assert.Contains(t, code, `memcmp(data + 1, "hadowFg", 7)`)
	assert.Contains(t, code, "return -1;")
	assert.True(t, strings.HasSuffix(code, "}\n"))
}

func TestMatcherSinglePrefixName(t *testing.T) {
	t.Parallel()

	// One name being a strict prefix of another must still resolve both
	// and reject anything in between.
	m := generator.BuildMatcher(map[string]int{
		"box":       7,
		"boxShadow": 8,
	})

	assert.Equal(t, 7, m.Lookup("box"))
	assert.Equal(t, 8, m.Lookup("boxShadow"))
	assert.Equal(t, -1, m.Lookup("boxShad"))
	assert.Equal(t, -1, m.Lookup("bo"))

	code := m.EmitCpp("lookup")
	assert.Contains(t, code, "if (size == 3) return 7;")
}
