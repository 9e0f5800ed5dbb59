package ports

import (
	"io"

	"go.trai.ch/reqs/internal/core/domain"
)

// ReportRenderer writes a report in a particular output format.
type ReportRenderer interface {
	Render(w io.Writer, report *domain.Report) error
}
