package gen

import (
	"path"
	"strings"

	"github.com/cockroachdb/errors"

	"modelgen/internal/naming"
	"modelgen/internal/schema"
)

// OutputPath is where the unit for entity is written:
// root + "/" + <namespace segments>/<ClassName><extension>. The root is
// kept as given apart from trailing slashes; an empty root yields a
// relative path.
func (r *Resolver) OutputPath(root string, entity *schema.Node) (string, error) {
	if entity.Kind() != schema.KindEntity {
		return "", errors.Newf("%s is not an entity and is not a generated unit", entity)
	}

	segs, err := r.namespaceSegments(entity)
	if err != nil {
		return "", err
	}

	cls, err := naming.ClassName(entity.Name())
	if err != nil {
		return "", errors.Wrapf(err, "class name of %s", entity)
	}

	rel := path.Join(append(segs, cls+r.cfg.Extension)...)

	switch trimmed := strings.TrimRight(root, "/"); {
	case root == "":
		return rel, nil
	case trimmed == "":
		return "/" + rel, nil
	default:
		return trimmed + "/" + rel, nil
	}
}
