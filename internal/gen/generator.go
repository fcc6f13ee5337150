package gen

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"modelgen/internal/diagnostic"
	"modelgen/internal/logger"
	"modelgen/internal/naming"
	"modelgen/internal/schema"
	"modelgen/utils"
)

// Plan is the resolved generation plan for a whole tree.
type Plan struct {
	// Root is the output root every unit path starts with.
	Root string `json:"root" yaml:"root"`
	// Units holds one entry per entity that resolved cleanly, in tree order.
	Units []Unit `json:"units" yaml:"units"`
	// Diagnostics collects every per-unit failure.
	Diagnostics *diagnostic.Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Unit is everything a template needs to emit one Java class.
type Unit struct {
	Entity            string   `json:"entity" yaml:"entity"`
	Class             string   `json:"class" yaml:"class"`
	Package           string   `json:"package" yaml:"package"`
	Path              string   `json:"path" yaml:"path"`
	Imports           []string `json:"imports,omitempty" yaml:"imports,omitempty"`
	CollectionImports []string `json:"collection_imports,omitempty" yaml:"collection_imports,omitempty"`
	// DependsOn lists the qualified names of referenced entities.
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Fields    []Field  `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Field describes one property of a unit.
type Field struct {
	Name         string `json:"name" yaml:"name"`
	Variable     string `json:"variable" yaml:"variable"`
	Constant     string `json:"constant" yaml:"constant"`
	Type         string `json:"type" yaml:"type"`
	DeclaredType string `json:"declared_type" yaml:"declared_type"`
	Multiplicity string `json:"multiplicity" yaml:"multiplicity"`
	Standard     bool   `json:"standard" yaml:"standard"`
}

// Qualified returns the fully qualified class name of the unit.
func (u *Unit) Qualified() string {
	if u.Package == "" {
		return u.Class
	}

	return u.Package + "." + u.Class
}

// Err returns the combined planning errors, or nil.
func (p *Plan) Err() error {
	return p.Diagnostics.Err()
}

// Generator plans units for every entity of a tree.
type Generator struct {
	resolver *Resolver
}

// NewGenerator creates a Generator over the tree containing root.
func NewGenerator(root *schema.Node, cfg Config) *Generator {
	return &Generator{resolver: NewResolver(root, cfg)}
}

// Resolver exposes the underlying resolver for templates and tools.
func (g *Generator) Resolver() *Resolver {
	return g.resolver
}

type unitResult struct {
	unit  Unit
	diags []diagnostic.Diagnostic
}

// Plan resolves every entity into a Unit rooted at outputRoot.
// Units are planned concurrently; results keep tree order. A failing unit
// only adds diagnostics, the returned error is reserved for cancellation.
func (g *Generator) Plan(ctx context.Context, outputRoot string) (*Plan, error) {
	entities := g.resolver.Entities()
	results := make([]unitResult, len(entities))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers(len(entities)))

	for i, entity := range entities {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = g.planUnit(outputRoot, entity)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "planning units")
	}

	plan := &Plan{Root: outputRoot, Diagnostics: &diagnostic.Diagnostics{}}

	for i, res := range results {
		if len(res.diags) > 0 {
			for _, d := range res.diags {
				plan.Diagnostics.Add(d)
			}

			logger.Logger.Warnw("unit skipped",
				"unit", entities[i].Name(),
				"errors", len(res.diags))

			continue
		}

		plan.Units = append(plan.Units, res.unit)
	}

	logger.Logger.Infow("plan complete",
		"units", len(plan.Units),
		"failed", len(entities)-len(plan.Units))

	return plan, nil
}

func (g *Generator) workers(units int) int {
	w := g.resolver.cfg.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}

	return utils.Clamp(1, w, max(units, 1))
}

// planUnit resolves one entity. Every property is attempted so that all of
// a unit's problems are reported together.
func (g *Generator) planUnit(outputRoot string, entity *schema.Node) unitResult {
	r := g.resolver
	unit := entity.Name()

	var res unitResult

	fail := func(err error, path string) {
		res.diags = append(res.diags, diagnostic.FromError(err, unit, path))
	}

	if len(entity.Namespace()) == 0 {
		res.diags = append(res.diags, diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     diagnostic.CodeMissingNamespace,
			Message:  "entity " + unit + " has no namespace",
			Unit:     unit,
			Path:     entity.Path(),
		})
	}

	u := Unit{Entity: unit}

	var err error

	if u.Class, err = naming.ClassName(unit); err != nil {
		fail(err, entity.Path())
	}

	if u.Package, err = r.QualifiedNamespace(entity); err != nil {
		fail(err, entity.Path())
	}

	if len(res.diags) == 0 {
		if u.Path, err = r.OutputPath(outputRoot, entity); err != nil {
			fail(err, entity.Path())
		}
	}

	seen := make(map[string]struct{})

	for _, p := range entity.Children(schema.KindProperty) {
		field, deps, ferr := g.planField(p)
		if ferr != nil {
			fail(ferr, p.Path())
			continue
		}

		u.Fields = append(u.Fields, field)

		for _, d := range deps {
			if _, dup := seen[d]; dup {
				continue
			}

			seen[d] = struct{}{}
			u.DependsOn = append(u.DependsOn, d)
		}
	}

	if len(res.diags) > 0 {
		return res
	}

	if u.Imports, err = r.Imports(entity); err != nil {
		fail(err, entity.Path())
	}

	if u.CollectionImports, err = r.CollectionImports(entity); err != nil {
		fail(err, entity.Path())
	}

	u.Imports = r.importLines(u.Imports)
	u.CollectionImports = r.importLines(u.CollectionImports)
	res.unit = u

	return res
}

// planField resolves one property. deps holds the qualified name of the
// referenced entity for non-standard types.
func (g *Generator) planField(p *schema.Node) (Field, []string, error) {
	r := g.resolver

	ref, err := r.typeRef(p)
	if err != nil {
		return Field{}, nil, err
	}

	m, _ := p.Multiplicity()

	f := Field{
		Name:         p.Name(),
		Type:         ref.String(),
		DeclaredType: p.DeclaredType(),
		Multiplicity: m.String(),
		Standard:     r.isStandard(p),
	}

	if f.Variable, err = naming.VariableName(p.Name()); err != nil {
		return Field{}, nil, errors.Wrap(err, "property name")
	}

	if f.Constant, err = naming.ConstantName(p.Name()); err != nil {
		return Field{}, nil, errors.Wrap(err, "property name")
	}

	if f.Standard {
		return f, nil, nil
	}

	q, err := r.QualifiedImportFor(p)
	if err != nil {
		return Field{}, nil, err
	}

	return f, []string{q}, nil
}
