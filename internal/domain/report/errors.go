package report

import "errors"

var ErrUnknownReportType = errors.New("unknown report type")
