package rules

import (
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
)

func TestOutputName(t *testing.T) {
	assert.Equal(t, "concatenated_scripts_part1.txt", OutputName(1))
	assert.Equal(t, "concatenated_scripts_part12.txt", OutputName(12))
}

func TestDefaultReservesOutputNames(t *testing.T) {
	tests := []struct {
		name     string
		parts    int
		reserved []int
		free     []int
	}{
		{name: "fewer than default", parts: 2, reserved: []int{1, 2, 3}, free: []int{4}},
		{name: "more than default", parts: 5, reserved: []int{1, 2, 3, 4, 5}, free: []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := Default("", tt.parts)
			for _, n := range tt.reserved {
				assert.True(t, rs.ExcludedFiles.Has(OutputName(n)), "part %d", n)
			}
			for _, n := range tt.free {
				assert.False(t, rs.ExcludedFiles.Has(OutputName(n)), "part %d", n)
			}
		})
	}
}

func TestDefaultExcludesSelf(t *testing.T) {
	rs := Default("/usr/local/bin/projectsnap", 3)

	assert.True(t, rs.ExcludedFiles.Has("projectsnap"))
	assert.False(t, rs.ExcludedFiles.Has("/usr/local/bin/projectsnap"))
}

func TestDefaultThresholds(t *testing.T) {
	rs := Default("", 3)

	assert.Equal(t, 2000, rs.MaxLines)
	assert.Equal(t, 2*datasize.MB, rs.MaxFileSize)
	assert.Equal(t, datasize.ByteSize(2*1024*1024), rs.MaxFileSize)
}

func TestDefaultTables(t *testing.T) {
	rs := Default("", 3)

	assert.True(t, rs.ExcludedDirs.Has(DependencyDir))
	assert.True(t, rs.ExcludedDirs.Has("__pycache__"))
	assert.True(t, rs.ExcludedPaths.Match("graphrag_data/output/run1"))
	assert.True(t, rs.FilePatterns.Match("module.pyc"))
	assert.True(t, rs.AllowedExtensions.Has(".py"))
	assert.True(t, rs.AllowedFilenames.Has("Dockerfile"))
	assert.Contains(t, rs.EssentialDocs, "README.md")
	assert.False(t, rs.ExcludedFiles.Has("README.md"))
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.Len(t, s, 2)
}
