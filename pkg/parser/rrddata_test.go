package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightness333/check-proxmox/pkg/types"
)

const rrdBody = `{"data":[
	{"time":1700000000,"cpu":0.0123,"maxcpu":4,"mem":2147483648,"netin":"1024"},
	{"time":1700000060,"cpu":0.4521,"mem":1073741824,"netout":null},
	{"time":1700000120,"cpu":0.5,"loadavg":"n/a"}
]}`

func TestParseSeries(t *testing.T) {
	series, err := ParseSeries(strings.NewReader(rrdBody))
	require.NoError(t, err)
	require.Len(t, series.Data, 3)
	assert.Equal(t, int64(1700000000), series.Data[0]["time"])
	assert.Equal(t, 0.4521, series.Data[1]["cpu"])
}

func TestParseSeriesInvalidBody(t *testing.T) {
	_, err := ParseSeries(strings.NewReader(`<html>proxy error</html>`))
	assert.Error(t, err)
}

func TestParseSeriesWithoutData(t *testing.T) {
	series, err := ParseSeries(strings.NewReader(`{"data":null}`))
	require.NoError(t, err)
	assert.Empty(t, series.Data)
}

func TestValue(t *testing.T) {
	series, err := ParseSeries(strings.NewReader(rrdBody))
	require.NoError(t, err)

	v, err := Value(series, 1, types.MetricCPU)
	require.NoError(t, err)
	assert.Equal(t, 0.4521, v)

	v, err = Value(series, 0, types.MetricMem)
	require.NoError(t, err)
	assert.Equal(t, 2147483648.0, v)

	v, err = Value(series, 0, types.MetricNetIn)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, v)

	v, err = Value(series, -1, types.MetricCPU)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestValueMissing(t *testing.T) {
	series, err := ParseSeries(strings.NewReader(rrdBody))
	require.NoError(t, err)

	tests := []struct {
		name   string
		series *types.Series
		index  int
		metric types.Metric
	}{
		{"absent key", series, 0, types.MetricDiskRead},
		{"null value", series, 1, types.MetricNetOut},
		{"index past the end", series, 69, types.MetricCPU},
		{"negative index before the start", series, -4, types.MetricCPU},
		{"nil series", nil, 0, types.MetricCPU},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Value(tt.series, tt.index, tt.metric)
			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing), "got %v", err)
			assert.Equal(t, string(tt.metric), missing.Field)
			assert.Equal(t, "'"+string(tt.metric)+"'", err.Error())
		})
	}
}

func TestValueNotNumeric(t *testing.T) {
	series, err := ParseSeries(strings.NewReader(rrdBody))
	require.NoError(t, err)

	_, err = Value(series, 2, types.MetricLoadAvg)
	require.Error(t, err)
	var missing *MissingFieldError
	assert.False(t, errors.As(err, &missing))
}
