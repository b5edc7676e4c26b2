package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"newsdesk/internal/core/port"
)

const reportSheet = "Advertisements"

var reportHeader = []any{
	"ID", "Name", "Position", "Active", "Priority",
	"Impressions (total)", "Clicks (total)",
	"Impressions (period)", "Clicks (period)", "CTR (period)",
}

// ExportReport writes per-ad statistics for the period to an xlsx workbook.
// The first sheet carries the period in its title row and one line per ad.
func (u *AdUseCase) ExportReport(ctx context.Context, req port.StatsReq) (string, []byte, error) {
	req, err := u.normalizeStatsReq(req)
	if err != nil {
		return "", nil, err
	}
	rows, err := u.repo.GetStatsByAd(ctx, req)
	if err != nil {
		return "", nil, err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err = xl.SetSheetName("Sheet1", reportSheet); err != nil {
		return "", nil, fmt.Errorf("rename sheet: %w", err)
	}
	title := fmt.Sprintf("Advertisement statistics %s to %s",
		req.From.UTC().Format(time.RFC3339), req.To.UTC().Format(time.RFC3339))
	if err = xl.SetCellValue(reportSheet, "A1", title); err != nil {
		return "", nil, err
	}
	if err = xl.SetSheetRow(reportSheet, "A2", &reportHeader); err != nil {
		return "", nil, err
	}

	for i, r := range rows {
		record := []any{
			r.AdvertisementID.String(),
			r.Name,
			string(r.Position),
			r.IsActive,
			r.Priority,
			r.TotalImpressions,
			r.TotalClicks,
			r.PeriodImpressions,
			r.PeriodClicks,
			clickThroughRate(r.PeriodClicks, r.PeriodImpressions),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err = xl.SetSheetRow(reportSheet, cell, &record); err != nil {
			return "", nil, err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("write workbook: %w", err)
	}
	filename := fmt.Sprintf("ad_report_%s_%s.xlsx", req.From.UTC().Format("20060102"), req.To.UTC().Format("20060102"))
	return filename, buf.Bytes(), nil
}
