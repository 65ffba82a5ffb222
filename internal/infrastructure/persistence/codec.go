package persistence

import (
	jsoniter "github.com/json-iterator/go"

	"closing_table/internal/domain"
	"closing_table/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func encode[T any](v T) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to encode record")
	}

	return data, nil
}

func decode[T any](data []byte) (T, error) {
	var v T

	if err := json.Unmarshal(data, &v); err != nil {
		return v, domain.WrapError(err, errcodes.CorruptRecord, "failed to decode record")
	}

	return v, nil
}
