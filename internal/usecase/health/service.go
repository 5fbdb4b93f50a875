package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	vectorizer Checker
	classifier Checker
}

// New creates a Service probing the vectorizer and the classifier.
func New(vectorizer, classifier Checker) *Service {
	return &Service{vectorizer: vectorizer, classifier: classifier}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{
		"vectorizer": run(ctx, s.vectorizer),
		"classifier": run(ctx, s.classifier),
	}

	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}

// run treats a missing checker as failing: artifacts must be loaded to serve.
func run(ctx context.Context, c Checker) CheckResult {
	if c == nil {
		return CheckError
	}
	if err := c.HealthCheck(ctx); err != nil {
		return CheckError
	}
	return CheckOK
}
