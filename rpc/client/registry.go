package client

import (
	"context"
	"fmt"
	"sort"

	ctypes "github.com/verus-go/verusrpc/rpc/core/types"
)

// Variadic as MaxArgs means there is no upper bound.
const Variadic = -1

// Command categories, as grouped by the daemon's own help output.
const (
	CategoryAddressIndex = "addressindex"
	CategoryBlockchain   = "blockchain"
	CategoryControl      = "control"
	CategoryCrosschain   = "crosschain"
	CategoryCurrency     = "currency"
	CategoryIdentity     = "identity"
	CategoryKV           = "kv"
	CategoryMarketplace  = "marketplace"
	CategoryMining       = "mining"
	CategoryWallet       = "wallet"
)

// Command describes one daemon method.
type Command struct {
	Name     string
	Category string
	MinArgs  int
	MaxArgs  int // Variadic for no limit
	Usage    string
	Help     string
}

// CheckArity returns ErrInvalidArity unless n arguments are acceptable.
func (c Command) CheckArity(n int) error {
	if n < c.MinArgs || (c.MaxArgs != Variadic && n > c.MaxArgs) {
		return ErrInvalidArity{Name: c.Name, Min: c.MinArgs, Max: c.MaxArgs, Got: n}
	}
	return nil
}

// Registry is the allow-list of daemon methods. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns a registry of cmds. It panics on a duplicate name or
// an impossible arity.
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		if _, ok := r.commands[c.Name]; ok {
			panic(fmt.Sprintf("duplicate command %q", c.Name))
		}
		if c.MinArgs < 0 || (c.MaxArgs != Variadic && c.MaxArgs < c.MinArgs) {
			panic(fmt.Sprintf("command %q: bad arity %d..%d", c.Name, c.MinArgs, c.MaxArgs))
		}
		r.commands[c.Name] = c
	}
	return r
}

// Lookup returns the command called name.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Commands returns every command sorted by name.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Category returns the commands of category sorted by name.
func (r *Registry) Category(category string) []Command {
	var out []Command
	for _, c := range r.Commands() {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns the sorted set of categories.
func (r *Registry) Categories() []string {
	seen := make(map[string]struct{})
	for _, c := range r.commands {
		seen[c.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Check validates a call of name with n arguments without sending it.
func (r *Registry) Check(name string, n int) error {
	c, ok := r.commands[name]
	if !ok {
		return ErrUnsupportedCommand{Name: name}
	}
	return c.CheckArity(n)
}

// Invoke checks name and the argument count against the registry, then
// forwards the call to caller. The result is returned as a Value.
func (r *Registry) Invoke(ctx context.Context, caller Caller, name string, args ...any) (ctypes.Value, error) {
	if err := r.Check(name, len(args)); err != nil {
		return ctypes.Value{}, err
	}
	if args == nil {
		args = []any{}
	}
	var result ctypes.Value
	if _, err := caller.Call(ctx, name, args, &result); err != nil {
		return ctypes.Value{}, err
	}
	return result, nil
}

// Invoke calls name through the default registry.
func Invoke(ctx context.Context, caller Caller, name string, args ...any) (ctypes.Value, error) {
	return defaultRegistry.Invoke(ctx, caller, name, args...)
}

// DefaultRegistry returns the registry of every daemon method this package
// knows about.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
