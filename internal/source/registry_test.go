package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrdersCaseInsensitively(t *testing.T) {
	r := NewRegistry()
	r.Add(&fakeSource{name: "beta"})
	r.Add(&fakeSource{name: "Alpha"})
	r.Add(&fakeSource{name: "gamma"})
	r.Add(&fakeSource{name: "Beta2"})

	assert.Equal(t, []string{"Alpha", "beta", "Beta2", "gamma"}, r.Names())
	assert.Equal(t, 4, r.Len())
}

func TestRegistryAddReplacesSameName(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Add(&fakeSource{name: "AVO"}))
	assert.True(t, r.Add(&fakeSource{name: "avo"}))

	assert.Equal(t, []string{"avo"}, r.Names())
}

func TestRegistryRemoveAndGet(t *testing.T) {
	r := NewRegistry()
	r.Add(&fakeSource{name: "AVO"})

	src, ok := r.Get("avo")
	require.True(t, ok)
	assert.Equal(t, "AVO", src.Name())

	assert.True(t, r.Remove("Avo"))
	assert.False(t, r.Remove("Avo"))
	_, ok = r.Get("AVO")
	assert.False(t, ok)
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	r.Add(&fakeSource{name: "A"})
	r.Add(&fakeSource{name: "M"})

	require.NoError(t, r.Replace("A", &fakeSource{name: "Z"}))
	assert.Equal(t, []string{"M", "Z"}, r.Names())

	assert.ErrorContains(t, r.Replace("missing", &fakeSource{name: "Q"}), "not found")
	assert.ErrorContains(t, r.Replace("M", &fakeSource{name: "z"}), "already exists")
	require.NoError(t, r.Replace("M", &fakeSource{name: "m"}))
	assert.Equal(t, []string{"m", "Z"}, r.Names())
}

func TestLoadRegistry(t *testing.T) {
	r, errs := LoadRegistry([]string{
		"IRIS;fdsnws:https://service.iris.edu",
		"broken",
		"AVO;wws:pubavo1.wr.usgs.gov:16022",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, []string{"AVO", "IRIS"}, r.Names())
	assert.Equal(t, []string{
		"AVO;wws:pubavo1.wr.usgs.gov:16022",
		"IRIS;fdsnws:https://service.iris.edu",
	}, r.ConfigStrings())
}
