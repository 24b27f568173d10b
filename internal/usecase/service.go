package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"newsmonitor/internal/domain"
	"newsmonitor/internal/metrics"
)

// GenericFailureMessage is returned for any fault the handlers did not
// anticipate.
const GenericFailureMessage = "Heck, the Serverless Gods abandoned us! There was an error!"

// Request is one inbound call as handed over by a transport. Record is the
// raw request record; Action, Param1 and Param2 come from the route.
type Request struct {
	ID     string
	Record any
	Action any
	Param1 any
	Param2 any
}

// Service validates requests, dispatches them and enriches the results.
type Service struct {
	env *Env
}

func NewService(env *Env) *Service {
	return &Service{env: env}
}

// Execute runs one request to completion. It always returns a Result;
// panics are converted into a generic 500 failure.
func (s *Service) Execute(ctx context.Context, req Request) (res domain.Result) {
	env := s.env
	if req.ID != "" {
		env = env.withLog(env.Log.With(req.ID))
	}

	defer func() {
		if r := recover(); r != nil {
			env.Log.Error("uncaught panic: %v\n%s", r, debug.Stack())
			metrics.OperationsTotal.WithLabelValues("unknown", "panic").Inc()
			res = domain.Fail(500, domain.InternalFailure, GenericFailureMessage)
		}
	}()

	if record, err := json.Marshal(req.Record); err == nil {
		env.Log.Info("request: %s", record)
	}

	rc, err := domain.NewRequestContext(req.Record, req.Action, req.Param1, req.Param2)
	if err != nil {
		var reqErr *domain.RequestError
		if errors.As(err, &reqErr) {
			env.Log.Warning("rejected request: %v", reqErr)
			metrics.OperationsTotal.WithLabelValues("unknown", "rejected").Inc()
			return domain.Fail(reqErr.StatusCode(), reqErr.Kind, reqErr.Error())
		}
		env.Log.Error("could not read request: %v", err)
		return domain.Fail(500, domain.InternalFailure, GenericFailureMessage)
	}

	action := metricAction(ResolveAction(rc))
	start := time.Now()

	h := NewHandler(env, rc)
	res = h.Run(ctx)

	metrics.OperationDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())

	if f, failed := res.Failure(); failed {
		metrics.OperationsTotal.WithLabelValues(action, "failure").Inc()
		env.Log.Error("response error: %s", mustJSON(f))
		return res
	}

	p, _ := res.Payload()
	if err := Enrich(p, h); err != nil {
		env.Log.Error("enrich failed: %v", err)
		return domain.Fail(500, domain.InternalFailure, GenericFailureMessage)
	}

	metrics.OperationsTotal.WithLabelValues(action, "success").Inc()
	env.Log.Info("response payload: %s", mustJSON(Streamline(p)))
	return res
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
