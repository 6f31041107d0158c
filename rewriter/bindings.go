package rewriter

import "github.com/viant/randsym/symbol"

// Bindings maps bound names to generated identifiers for one invocation
type Bindings struct {
	symbols map[string]string
	names   []string
}

// Resolve returns identifier bound to name, generating it on first sighting
func (b *Bindings) Resolve(name string, generator symbol.Generator) string {
	if ret, ok := b.symbols[name]; ok {
		return ret
	}
	ret := generator.Generate()
	b.symbols[name] = ret
	b.names = append(b.names, name)
	return ret
}

// Lookup returns identifier bound to name
func (b *Bindings) Lookup(name string) (string, bool) {
	ret, ok := b.symbols[name]
	return ret, ok
}

// Len returns number of bound names
func (b *Bindings) Len() int {
	return len(b.names)
}

// Names returns bound names in order of first sighting
func (b *Bindings) Names() []string {
	return append([]string(nil), b.names...)
}

// NewBindings creates an empty table
func NewBindings() *Bindings {
	return &Bindings{symbols: map[string]string{}}
}
