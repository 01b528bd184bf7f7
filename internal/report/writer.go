package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("report: unknown format %q (table, csv, json)", s)
	}
}

// Write encodes r to w.
func Write(w io.Writer, r *Response, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return WriteTable(w, r)
	}
}

func (r *Response) header() []string {
	h := []string{"freq_hz", "voltage_v", "efficiency", "efficiency_db"}
	if r.ImpedanceMagnitude != nil {
		h = append(h, "impedance_ohm", "phase_deg")
	}
	if r.GroupDelay != nil {
		h = append(h, "group_delay_s")
	}
	return h
}

func (r *Response) row(i int) []string {
	row := []string{
		formatNumber(r.Frequencies[i]),
		formatNumber(r.VoltageMagnitude[i]),
		formatNumber(r.Efficiency[i]),
		formatNumber(r.EfficiencyDB[i]),
	}
	if r.ImpedanceMagnitude != nil {
		row = append(row, formatNumber(r.ImpedanceMagnitude[i]), formatNumber(r.ImpedancePhase[i]))
	}
	if r.GroupDelay != nil {
		row = append(row, formatNumber(r.GroupDelay[i]))
	}
	return row
}

func formatNumber(n Number) string {
	return strconv.FormatFloat(float64(n), 'g', 10, 64)
}

// WriteCSV writes one header line and one row per sample.
func WriteCSV(w io.Writer, r *Response) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.header()); err != nil {
		return err
	}
	for i := range r.Frequencies {
		if err := cw.Write(r.row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteTable writes an aligned text table followed by the summary, if any.
// The header is colored when w is a terminal.
func WriteTable(w io.Writer, r *Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	bold := color.New(color.Bold)
	if _, err := bold.Fprintln(tw, strings.Join(r.header(), "\t")); err != nil {
		return fmt.Errorf("report: failed to write table header: %w", err)
	}

	for i := range r.Frequencies {
		if _, err := fmt.Fprintln(tw, strings.Join(r.row(i), "\t")); err != nil {
			return fmt.Errorf("report: failed to write table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: failed to flush table: %w", err)
	}

	if r.Summary == nil {
		return nil
	}

	s := r.Summary
	lines := []string{
		fmt.Sprintf("peak voltage:     %s V at %s Hz", formatNumber(s.PeakVoltage), formatNumber(s.PeakVoltageFreq)),
		fmt.Sprintf("min voltage:      %s V at %s Hz", formatNumber(s.MinVoltage), formatNumber(s.MinVoltageFreq)),
		fmt.Sprintf("peak efficiency:  %s at %s Hz", formatNumber(s.PeakEfficiency), formatNumber(s.PeakEfficiencyFreq)),
		fmt.Sprintf("mean efficiency:  %s (%s dB)", formatNumber(s.MeanEfficiency), formatNumber(s.MeanEfficiency_dB)),
		fmt.Sprintf("efficiency -3 dB: %s Hz", formatNumber(s.EfficiencyBW)),
		fmt.Sprintf("non-finite:       %d", r.NonFinite),
	}

	if _, err := bold.Fprintln(w, "\nsummary"); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
