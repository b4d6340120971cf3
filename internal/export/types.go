package export

// Document is the versioned export envelope. Unlike the data file, exports
// order days chronologically so diffs and reading order are stable.
type Document struct {
	Version  string      `json:"version"`
	Days     []DayExport `json:"days"`
	LongTerm []string    `json:"long_term"`
}

type DayExport struct {
	Date  string     `json:"date"`
	Tasks []TaskData `json:"tasks"`
}

type TaskData struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}
