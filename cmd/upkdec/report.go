package main

import (
	"encoding/json"
	"fmt"
	"time"
)

// Report summarizes a batch conversion run.
type Report struct {
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Files       int       `json:"files"`
	Converted   int       `json:"converted"`
	Skipped     int       `json:"skipped,omitempty"`
	Failed      int       `json:"failed,omitempty"`
	BytesIn     int64     `json:"bytes_in"`
	BytesOut    int64     `json:"bytes_out"`
	ErrorSample []string  `json:"error_sample,omitempty"`
}

func formatReport(report *Report) string {
	if report == nil {
		return ""
	}
	return fmt.Sprintf("files=%d converted=%d skipped=%d failed=%d bytes_in=%d bytes_out=%d",
		report.Files, report.Converted, report.Skipped, report.Failed, report.BytesIn, report.BytesOut)
}

func writeJSONReport(report *Report) error {
	if report == nil {
		return nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
