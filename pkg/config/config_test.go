package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigFile(t *testing.T) {
	t.Run("ext incorrect", func(t *testing.T) {
		_, err := ParseConfigFile(filepath.Join(t.TempDir(), "scenarios.yoml"))
		assert.Equal(t, ErrConfigExt, err)
	})
	t.Run("file not exist", func(t *testing.T) {
		_, err := ParseConfigFile(filepath.Join(t.TempDir(), "config.yaml"))
		assert.Error(t, err)
	})
	t.Run("normal", func(t *testing.T) {
		conf, err := ParseConfigFile("../../test/config.yaml")
		require.NoError(t, err)

		assert.Equal(t, "eu-west-1", conf.Region)
		assert.Equal(t, DefaultPrefix, conf.Prefix)
		assert.Equal(t, 20, conf.PageSize)
		require.Len(t, conf.Scenarios, 3)
		assert.Equal(t, `{"fail":true}`, conf.Scenarios[1].Payload)
		assert.Equal(t, "Timeout example", conf.Scenarios[2].Title)
	})
}

func TestParseDefaults(t *testing.T) {
	conf, err := Parse([]byte("region: ap-south-1\n"))
	require.NoError(t, err)

	assert.Equal(t, "ap-south-1", conf.Region)
	assert.Equal(t, DefaultPrefix, conf.Prefix)
	assert.Equal(t, DefaultPageSize, conf.PageSize)
	assert.Equal(t, Default().Scenarios, conf.Scenarios)
}

func TestDefault(t *testing.T) {
	conf := Default()

	assert.NoError(t, Validate(&conf))
	names := make([]string, 0, len(conf.Scenarios))
	for _, s := range conf.Scenarios {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"HappyPath", "MidstreamError", "Timeout"}, names)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		conf          *Config
		wantErrString string
	}{
		{
			name:          "region empty",
			conf:          &Config{},
			wantErrString: "config: the region is required",
		},
		{
			name:          "prefix empty",
			conf:          &Config{Region: DefaultRegion},
			wantErrString: "config: the prefix is required",
		},
		{
			name:          "page size too large",
			conf:          &Config{Region: DefaultRegion, Prefix: DefaultPrefix, PageSize: 51},
			wantErrString: "config: the page_size must be between 1 and 50",
		},
		{
			name:          "scenarios empty",
			conf:          &Config{Region: DefaultRegion, Prefix: DefaultPrefix, PageSize: 50},
			wantErrString: "config: the scenarios cannot be an empty",
		},
		{
			name: "scenario lack name",
			conf: &Config{
				Region: DefaultRegion, Prefix: DefaultPrefix, PageSize: 50,
				Scenarios: []Scenario{{}},
			},
			wantErrString: "config: the scenarios must have the name field",
		},
		{
			name: "duplicate scenario",
			conf: &Config{
				Region: DefaultRegion, Prefix: DefaultPrefix, PageSize: 50,
				Scenarios: []Scenario{{Name: "HappyPath"}, {Name: "HappyPath"}},
			},
			wantErrString: "config: duplicate scenario name: HappyPath",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.conf)
			require.Error(t, err)
			assert.Equal(t, tt.wantErrString, err.Error())
		})
	}
}

func TestSelect(t *testing.T) {
	conf := Default()

	assert.Equal(t, conf.Scenarios, conf.Select())

	got := conf.Select("Timeout", "NoSuchName")
	assert.Equal(t, []Scenario{
		{Name: "Timeout", Title: "Timeout example"},
		{Name: "NoSuchName", Title: "NoSuchName example"},
	}, got)
}
