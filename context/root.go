package context

import (
	"sort"

	"github.com/netrixframework/safez3/config"
	"github.com/netrixframework/safez3/log"
	"github.com/netrixframework/safez3/util"
	"github.com/netrixframework/safez3/z3"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownParam is returned when the config names a parameter the
	// solver does not have
	ErrUnknownParam = errors.New("unknown solver parameter")
	// ErrParamType is returned when a configured value does not fit the
	// parameter's kind
	ErrParamType = errors.New("solver parameter has the wrong type")
)

// RootContext stores the configuration shared by every check
type RootContext struct {
	// Config and instance of the configuration object
	Config *config.Config
	// Counter counts the checks run through this context
	Counter *util.Counter
	// Logger for logging purposes
	Logger *log.Logger
}

// NewRootContext creates an instance of the RootContext from the configuration
func NewRootContext(config *config.Config, logger *log.Logger) *RootContext {
	return &RootContext{
		Config:  config,
		Counter: util.NewCounter(),
		Logger:  logger,
	}
}

// NewZ3Context creates an engine context from the engine options of the
// configuration. The caller must close it.
func (c *RootContext) NewZ3Context() *z3.Context {
	cfg := z3.NewConfig()
	defer cfg.Close()

	keys := make([]string, 0, len(c.Config.Engine))
	for k := range c.Config.Engine {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cfg.SetParamValue(k, c.Config.Engine[k])
	}

	ctx := z3.NewContext(cfg)
	ctx.SetLogger(c.Logger)
	return ctx
}

// NewSolver creates a solver in ctx configured with the solver section of
// the configuration.
func (c *RootContext) NewSolver(ctx *z3.Context) (*z3.Solver, error) {
	var s *z3.Solver
	if c.Config.Solver.Logic != "" {
		s = ctx.NewSolverForLogic(c.Config.Solver.Logic)
	} else {
		s = ctx.NewSolver()
	}

	params, err := c.solverParams(ctx, s)
	if err != nil {
		s.Close()
		return nil, err
	}
	defer params.Close()
	s.SetParams(params)
	return s, nil
}

func (c *RootContext) solverParams(ctx *z3.Context, s *z3.Solver) (*z3.Params, error) {
	descrs := s.ParamDescrs()
	defer descrs.Close()

	params := ctx.NewParams()
	if c.Config.Solver.TimeoutMs > 0 {
		params.SetUint("timeout", c.Config.Solver.TimeoutMs)
	}
	for name, value := range c.Config.Solver.Params {
		if err := setParam(params, descrs.Kind(name), name, value); err != nil {
			params.Close()
			return nil, err
		}
	}
	if err := params.Validate(descrs); err != nil {
		params.Close()
		return nil, err
	}
	return params, nil
}

func setParam(p *z3.Params, kind z3.ParamKind, name string, value interface{}) error {
	wrongType := func() error {
		return errors.Wrapf(ErrParamType, "%s: %v is not a %s", name, value, kind)
	}
	switch kind {
	case z3.ParamBool:
		b, ok := value.(bool)
		if !ok {
			return wrongType()
		}
		p.SetBool(name, b)
	case z3.ParamUint:
		f, ok := number(value)
		if !ok || f < 0 || f != float64(uint32(f)) {
			return wrongType()
		}
		p.SetUint(name, uint32(f))
	case z3.ParamDouble:
		f, ok := number(value)
		if !ok {
			return wrongType()
		}
		p.SetFloat64(name, f)
	case z3.ParamSymbol, z3.ParamString:
		s, ok := value.(string)
		if !ok {
			return wrongType()
		}
		p.SetSymbol(name, s)
	default:
		return errors.Wrap(ErrUnknownParam, name)
	}
	return nil
}

// number accepts the numeric types produced by the JSON and YAML decoders.
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// ParamInfo describes one solver parameter
type ParamInfo struct {
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Documentation string `json:"documentation"`
}

// SolverParams lists the parameters accepted by the configured solver
func (c *RootContext) SolverParams() []ParamInfo {
	ctx := c.NewZ3Context()
	defer ctx.Close()
	s := ctx.NewSolver()
	defer s.Close()
	descrs := s.ParamDescrs()
	defer descrs.Close()

	out := make([]ParamInfo, descrs.Size())
	for i := range out {
		name := descrs.Name(i)
		out[i] = ParamInfo{
			Name:          name,
			Kind:          string(descrs.Kind(name)),
			Documentation: descrs.Documentation(name),
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
