package models

import "time"

type InterfaceCounters struct {
	Name    string `json:"name"`
	RxBytes uint64 `json:"rx_bytes"`
	TxBytes uint64 `json:"tx_bytes"`
}

type NetworkTotals struct {
	Interfaces []InterfaceCounters `json:"interfaces"`
	TotalRx    uint64              `json:"total_rx"`
	TotalTx    uint64              `json:"total_tx"`
	BootTime   time.Time           `json:"boot_time"`
}

// NetSample is the traffic seen during one sampling interval, in MB.
type NetSample struct {
	Elapsed int     `json:"elapsed_seconds"`
	RxMB    float64 `json:"rx_mb"`
	TxMB    float64 `json:"tx_mb"`
}
