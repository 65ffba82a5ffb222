// Package notifier delivers result notifications to the counterparty.
package notifier

import (
	jsoniter "github.com/json-iterator/go"

	"closing_table/pkg/contextx"
)

const TaskTypeResultNotify = "result:notify"

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)
