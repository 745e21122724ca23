package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantName   string
		wantType   string
		wantParams []string
		wantErr    bool
	}{
		{
			name:       "winston with timeout",
			raw:        "AVO;wws:pubavo1.wr.usgs.gov:16022:10000",
			wantName:   "AVO",
			wantType:   "wws",
			wantParams: []string{"pubavo1.wr.usgs.gov", "16022", "10000"},
		},
		{
			name:       "fdsn url keeps its colons",
			raw:        "IRIS;fdsnws:http://service.iris.edu:8080/x|AV|*|--|BH?",
			wantName:   "IRIS",
			wantType:   "fdsnws",
			wantParams: []string{"http://service.iris.edu:8080/x", "AV", "*", "--", "BH?"},
		},
		{
			name:       "type is lower-cased",
			raw:        "Local Files;FILE:/tmp/channels.txt",
			wantName:   "Local Files",
			wantType:   "file",
			wantParams: []string{"/tmp/channels.txt"},
		},
		{
			name:     "no params",
			raw:      "Bare;ws",
			wantName: "Bare",
			wantType: "ws",
		},
		{name: "missing type separator", raw: "nothing here", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank name", raw: " ;ws:host:1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpec(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, spec.Name)
			assert.Equal(t, tt.wantType, spec.Type)
			assert.Equal(t, tt.wantParams, spec.Params)
			assert.Equal(t, tt.raw, spec.Raw)
		})
	}
}

func TestSpecParam(t *testing.T) {
	spec := Spec{Params: []string{"a", "", "c"}}
	assert.Equal(t, "a", spec.Param(0, "x"))
	assert.Equal(t, "x", spec.Param(1, "x"))
	assert.Equal(t, "c", spec.Param(2, "x"))
	assert.Equal(t, "x", spec.Param(7, "x"))
}

func TestNewDispatchesOnType(t *testing.T) {
	src, err := New("AVO;wws:pubavo1.wr.usgs.gov:16022")
	require.NoError(t, err)
	assert.IsType(t, &WaveServer{}, src)
	assert.Equal(t, "AVO", src.Name())
	assert.Equal(t, "AVO;wws:pubavo1.wr.usgs.gov:16022", src.ConfigString())

	src, err = New("IRIS;fdsnws:https://service.iris.edu")
	require.NoError(t, err)
	assert.IsType(t, &FDSN{}, src)

	src, err = New("Disk;file:/tmp/list.txt")
	require.NoError(t, err)
	assert.IsType(t, &File{}, src)

	_, err = New("Odd;seedlink:host:18000")
	assert.ErrorContains(t, err, "unknown type")

	_, err = New("NoHost;ws")
	assert.ErrorContains(t, err, "missing host")

	_, err = New("BadPort;ws:host:notaport")
	assert.ErrorContains(t, err, "invalid port")
}
