package parser

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"sigs.k8s.io/json"

	"github.com/nightness333/check-proxmox/pkg/types"
)

// MissingFieldError reports a metric that the selected sample does not carry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("'%s'", e.Field)
}

func ParseSeries(r io.Reader) (*types.Series, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read rrddata body")
	}

	series := &types.Series{}
	if err := json.UnmarshalCaseSensitivePreserveInts(body, series); err != nil {
		return nil, errors.Wrap(err, "decode rrddata body")
	}
	return series, nil
}

// Value returns the metric field of the sample at index. A negative index
// counts back from the newest sample.
func Value(series *types.Series, index int, metric types.Metric) (float64, error) {
	missing := &MissingFieldError{Field: string(metric)}
	if series == nil {
		return 0, missing
	}

	if index < 0 {
		index += len(series.Data)
	}
	if index < 0 || index >= len(series.Data) {
		return 0, missing
	}

	raw, ok := series.Data[index][string(metric)]
	if !ok || raw == nil {
		return 0, missing
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "sample %d field %s", index, metric)
	}
	return value, nil
}
