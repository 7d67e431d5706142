package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/barbershop-admin/internal/domain/finance"
)

var entryHeader = []string{
	"Agendamento", "Data", "Tipo", "Serviço", "Barbeiro", "Status",
	"Faturamento", "Comissão", "Receita da barbearia",
}

func entryRow(e finance.FinancialEntry) []any {
	return []any{
		e.AppointmentID,
		e.Date,
		e.Type,
		e.ServiceName,
		e.BarberName,
		e.Status,
		e.TotalRevenue.InexactFloat64(),
		e.BarberCommission.InexactFloat64(),
		e.ShopRevenue.InexactFloat64(),
	}
}

// EntriesXLSX gera a planilha com as entradas e uma aba de totais
func EntriesXLSX(r ShopReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Financeiro"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for c, v := range entryHeader {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for i, e := range r.Entries {
		for c, v := range entryRow(e) {
			cell, _ := excelize.CoordinatesToCellName(c+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "C", 12)
	_ = f.SetColWidth(sheet, "D", "E", 24)
	_ = f.SetColWidth(sheet, "F", "F", 12)
	_ = f.SetColWidth(sheet, "G", "I", 18)

	header, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "I1", header)

	money, _ := f.NewStyle(&excelize.Style{CustomNumFmt: ptrString(`"₺"#,##0.00`)})
	if n := len(r.Entries); n > 0 {
		last, _ := excelize.CoordinatesToCellName(9, n+1)
		_ = f.SetCellStyle(sheet, "G2", last, money)
	}

	// -------- Totais --------
	totals := "Totais"
	if _, err := f.NewSheet(totals); err != nil {
		return nil, err
	}
	rows := [][]any{
		{"Período", r.StartDate + " a " + r.EndDate},
		{"Faturamento", r.Totals.TotalRevenue.InexactFloat64()},
		{"Comissões", r.Totals.TotalCommission.InexactFloat64()},
		{"Receita da barbearia", r.Totals.TotalShopRevenue.InexactFloat64()},
		{"Pagamentos", r.Totals.TotalPayouts.InexactFloat64()},
		{"Saldo dos barbeiros", r.Totals.NetEarnings.InexactFloat64()},
	}
	for i, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, i+1)
			_ = f.SetCellValue(totals, cell, v)
		}
	}
	_ = f.SetColWidth(totals, "A", "A", 24)
	_ = f.SetColWidth(totals, "B", "B", 26)
	_ = f.SetCellStyle(totals, "B2", "B6", money)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func EntriesCSV(r ShopReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(entryHeader); err != nil {
		return nil, err
	}
	for _, e := range r.Entries {
		if err := w.Write([]string{
			uintString(e.AppointmentID),
			e.Date,
			e.Type,
			e.ServiceName,
			e.BarberName,
			e.Status,
			e.TotalRevenue.StringFixed(2),
			e.BarberCommission.StringFixed(2),
			e.ShopRevenue.StringFixed(2),
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func ptrString(s string) *string { return &s }

func uintString(v uint) string { return strconv.FormatUint(uint64(v), 10) }
