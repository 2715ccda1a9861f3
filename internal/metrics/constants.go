package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Player info metric names
const (
	MetricNamePlayerInfoRequests = "player_info_requests_total"
	MetricNamePlayerInfoDuration = "player_info_request_duration_seconds"
)

// Business metric names
const (
	MetricNameProgressCalculations = "level_progress_calculations_total"
	MetricNameLevelLookups         = "level_exp_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Player info metric help text
const (
	HelpTextPlayerInfoRequests = "Total number of player info service requests by outcome"
	HelpTextPlayerInfoDuration = "Player info service request latency in seconds"
)

// Business metric help text
const (
	HelpTextProgressCalculations = "Total number of level progress calculations by result"
	HelpTextLevelLookups         = "Total number of single level exp lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// ============================================================================
// Label Values
// ============================================================================

// Player info outcomes
const (
	OutcomeSuccess    = "success"
	OutcomeBadStatus  = "bad_status"
	OutcomeEmpty      = "empty"
	OutcomeTimeout    = "timeout"
	OutcomeUnexpected = "unexpected"
)

// Calculation and lookup results
const (
	ResultOK      = "ok"
	ResultFailed  = "failed"
	ResultInvalid = "invalid"
)

// PathUnmatched labels requests that did not match a route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UpstreamLatencyBuckets covers the player info call up to its 20s timeout
var UpstreamLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20}
