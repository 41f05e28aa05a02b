package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := NewSet("b", "a", "b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, []string{"a", "b"}, s.Sorted())
	assert.Equal(t, []string{}, NewSet().Sorted())
}

func TestFields(t *testing.T) {
	out := "  android.hardware.foo@1.0::IFoo\tandroid.hardware.bar@2.1::IBar\n\n  \nandroid.hidl.base@1.0::IBase  "
	assert.Equal(t, []string{
		"android.hardware.foo@1.0::IFoo",
		"android.hardware.bar@2.1::IBar",
		"android.hidl.base@1.0::IBase",
	}, fields(out))
	assert.Empty(t, fields(" \n\t"))
}

func TestMatrixAnalyzer_Level(t *testing.T) {
	f := newFakeRunner()
	f.on("am --input empty-level.xml --level", 0, "\n", "warning: no level")
	m := NewMatrixAnalyzer("am", f)

	lvl, ok, err := m.Level(context.Background(), "empty-level.xml")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", lvl)
}

func TestDependencyGenerator_Args(t *testing.T) {
	tests := []struct {
		name  string
		roots []string
		ifs   []string
		want  []string
	}{
		{
			name: "no package roots",
			ifs:  []string{"A"},
			want: []string{"-Ldependencies", "A"},
		},
		{
			name:  "one package root",
			roots: []string{"p:q"},
			ifs:   []string{"A", "B"},
			want:  []string{"-Ldependencies", "-R", "-r", "p:q", "A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDependencyGenerator("hg", tt.roots, nil)
			assert.Equal(t, tt.want, g.Args(tt.ifs))
		})
	}
}
