package domain

// Execution-time failure kinds.
const (
	SourceBuildFailure   = "SourceBuildFailure"
	MetadataFetchFailure = "MetadataFetchFailure"
	ArticleParseFailure  = "ArticleParseFailure"
	InternalFailure      = "InternalFailure"
)

// Failure is the error record handed back to the transport.
type Failure struct {
	Status  int    `json:"status"`
	Kind    string `json:"-"`
	Message string `json:"error"`
}

// Result is either a success payload or a failure, never both.
type Result struct {
	payload *Payload
	failure *Failure
}

func Success(p *Payload) Result {
	if p == nil {
		p = NewPayload(200)
	}
	return Result{payload: p}
}

func Fail(status int, kind, message string) Result {
	return Result{failure: &Failure{Status: status, Kind: kind, Message: message}}
}

func (r Result) OK() bool { return r.failure == nil }

func (r Result) Payload() (*Payload, bool) {
	return r.payload, r.payload != nil
}

func (r Result) Failure() (*Failure, bool) {
	return r.failure, r.failure != nil
}

// Status is the status code of whichever variant is set.
func (r Result) Status() int {
	if r.failure != nil {
		return r.failure.Status
	}
	if r.payload == nil {
		return 0
	}
	return r.payload.Status()
}

// Body is the JSON-serializable value for the transport.
func (r Result) Body() any {
	if r.failure != nil {
		return r.failure
	}
	return r.payload
}
