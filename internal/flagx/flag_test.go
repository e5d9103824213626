package flagx

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-a", "http://localhost"},
			names: []string{"-c", "--config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "long flag with equals",
			args:  []string{"--config=alt.json", "-a", "http://localhost"},
			names: []string{"-c", "--config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "positional arguments dropped",
			args:  []string{"report.pdf", "-c", "x.json", "photo.png"},
			names: []string{"-c"},
			want:  []string{"-c", "x.json"},
		},
		{
			name:  "flag followed by another flag keeps no value",
			args:  []string{"-c", "-r"},
			names: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "double dash stops scanning",
			args:  []string{"--", "-c", "x.json"},
			names: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "repeated flag preserved in order",
			args:  []string{"-r", "a@b.io", "-m", "hi", "-r", "c@d.io"},
			names: []string{"-r"},
			want:  []string{"-r", "a@b.io", "-r", "c@d.io"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "cfg.json", ConfigPath([]string{"-a", "http://x", "-c", "cfg.json"}))
	assert.Equal(t, "long.json", ConfigPath([]string{"-config=long.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", "http://x", "file.txt"}))
}

func TestStringList_Repeated(t *testing.T) {
	var list StringList
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Var(&list, "r", "recipient")

	require.NoError(t, fs.Parse([]string{"-r", "a@b.io", "-r", "c@d.io", "file.bin"}))

	assert.Equal(t, StringList{"a@b.io", "c@d.io"}, list)
	assert.Equal(t, "a@b.io,c@d.io", list.String())
	assert.Equal(t, []string{"file.bin"}, fs.Args())
}
