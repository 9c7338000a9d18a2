package sweep

// Record holds the measurements collected for one sweep point. The
// timing and memory fields are pointers so that a worker run whose
// output could not be scraped serializes them as null. Field order
// fixes the JSON key order in the report artifact.
type Record struct {
	QuerySize       int       `json:"querySize"`
	Operation       Operation `json:"operation"`
	Structure       Structure `json:"datastructures_type"`
	ExecutionTimeMs *int64    `json:"execution_time_ms"`
	MemoryUsedMb    *int64    `json:"memory_used_mb"`
	CPUUsagePercent float64   `json:"cpu_usage_percent"`
}
