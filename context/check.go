package context

import (
	"strings"

	"github.com/google/uuid"
	"github.com/netrixframework/safez3/log"
	"github.com/netrixframework/safez3/z3"
	"github.com/pkg/errors"
)

// CheckReport is the outcome of checking one SMT-LIB2 script
type CheckReport struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	Model         map[string]string `json:"model,omitempty"`
	Stats         map[string]string `json:"stats,omitempty"`
	ReasonUnknown string            `json:"reason_unknown,omitempty"`
}

// Check decides the assertions of script in a fresh engine context. Parse
// failures and misconfigured parameters are returned as errors.
func (c *RootContext) Check(script string) (report *CheckReport, err error) {
	// The engine reads scripts as C strings.
	if strings.ContainsRune(script, 0) {
		return nil, errors.Wrap(z3.ErrParse, "script contains a NUL byte")
	}

	id := uuid.NewString()
	logger := c.Logger.With(log.LogParams{"check_id": id})

	ctx := c.NewZ3Context()
	defer ctx.Close()
	// Every object lives in ctx, which is dropped with this call, so an
	// engine failure cannot leak into later checks.
	defer func() {
		if r := recover(); r != nil {
			fatal, ok := r.(*z3.FatalError)
			if !ok {
				panic(r)
			}
			err = errors.Wrap(fatal, "engine failure")
		}
	}()

	terms, err := ctx.ParseSMTLIB2String(script)
	if err != nil {
		return nil, err
	}
	defer z3.CloseAll(terms)

	s, err := c.NewSolver(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	for _, t := range terms {
		s.Assert(t)
	}
	result := s.Check()
	c.Counter.Next()

	report = &CheckReport{
		ID:     id,
		Status: result.String(),
		Stats:  statistics(s),
	}
	switch result {
	case z3.Sat:
		report.Model = assignments(s)
	case z3.Unknown:
		report.ReasonUnknown = s.ReasonUnknown()
	}
	logger.With(log.LogParams{
		"status":     report.Status,
		"assertions": len(terms),
	}).Info("Checked script")
	return report, nil
}

func assignments(s *z3.Solver) map[string]string {
	m := s.Model()
	defer m.Close()

	out := make(map[string]string)
	for name, v := range m.Assignments() {
		out[name] = v.String()
		v.Close()
	}
	return out
}

func statistics(s *z3.Solver) map[string]string {
	stats := s.Statistics()
	defer stats.Close()

	out := make(map[string]string, stats.Size())
	for _, e := range stats.Entries() {
		out[e.Key] = e.Value()
	}
	return out
}
