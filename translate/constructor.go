package translate

import (
	"fmt"

	"github.com/mlbind/mlbind/ir"
)

// constructorType resolves and encodes the constructor function type for a
// class owned by the declaration named owner.
//
// A class without a "constructor" prop gets a synthesized default: a
// one-parameter function from unit to the owning named type. When several
// props are named "constructor" the first wins; that degenerate input is
// accepted deterministically rather than diagnosed.
func (tr *Translator) constructorType(owner string, t ir.Type) (string, error) {
	class, ok := t.(*ir.ClassType)
	if !ok {
		return "", fmt.Errorf("resolving constructor of %q on %s type: %w",
			owner, t.Kind(), ErrNotAClass)
	}

	for _, p := range class.Props {
		if p.Name == "constructor" {
			return tr.encodeType(p.Type)
		}
	}

	def := ir.Function([]ir.Param{{Name: "_", Type: ir.Unit()}}, ir.Named(owner))
	return tr.encodeType(def)
}
