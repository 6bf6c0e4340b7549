package domain

// FileResult records the outcome of one puzzle within a batch run.
// Error is set when the file could not be read or parsed; Status is set
// when the search ran to a terminal outcome.
type FileResult struct {
	Path         string `json:"path"`
	Status       Status `json:"status,omitempty"`
	Error        string `json:"error,omitempty"`
	Nodes        int    `json:"nodes,omitempty"`
	DurationMs   int64  `json:"durationMs,omitempty"`
	SolutionPath string `json:"solutionPath,omitempty"`
}

// BatchStats aggregates solve outcomes across a batch run. Duration figures
// cover solve attempts only; files that failed to parse are excluded.
type BatchStats struct {
	Total       int `json:"total"`
	Solved      int `json:"solved"`
	NoSolution  int `json:"noSolution"`
	TimedOut    int `json:"timedOut"`
	ParseFailed int `json:"parseFailed"`

	Nodes         int   `json:"nodes"`
	MinDurationMs int64 `json:"minDurationMs"`
	MaxDurationMs int64 `json:"maxDurationMs"`
	AvgDurationMs int64 `json:"avgDurationMs"`
}

// BatchReport is the JSON document written at the end of a batch run.
type BatchReport struct {
	Dir       string       `json:"dir"`
	Glob      string       `json:"glob"`
	Strategy  string       `json:"strategy"`
	TimeoutMs int64        `json:"timeoutMs"`
	StartedAt int64        `json:"startedAt"`
	Results   []FileResult `json:"results"`
	Stats     BatchStats   `json:"stats"`
}
