// Package region discovers which provider region hosts an App.
//
// Every App has a public hostname <app>.frb.io that is a CNAME to a
// region-specific target such as <app>.eu2.frbit.com. The second label of
// that target is the region code.
package region

import (
	"context"
	"net"
	"strings"

	"github.com/frcopy/frcopy/internal/logger"
)

const (
	// AppDomain is the base domain of every App's public hostname.
	AppDomain = "frb.io"
	// ProviderDomain is the domain of the deploy hosts.
	ProviderDomain = "frbit.com"
)

// Labels maps known region codes to a human readable location.
var Labels = map[string]string{
	"eu2": "EU (AWS Ireland)",
	"us1": "US (AWS Virginia)",
}

// Label returns the display name for a region, or the code itself when unknown.
func Label(code string) string {
	if l, ok := Labels[code]; ok {
		return l
	}
	return code
}

// LookupCNAMEFunc matches net.Resolver.LookupCNAME.
type LookupCNAMEFunc func(ctx context.Context, host string) (string, error)

// Resolver maps App names to regions.
type Resolver struct {
	lookup LookupCNAMEFunc
	log    logger.Logger
}

// NewResolver creates a resolver using the system DNS resolver.
func NewResolver(log logger.Logger) *Resolver {
	return NewResolverWithLookup(net.DefaultResolver.LookupCNAME, log)
}

// NewResolverWithLookup creates a resolver with a custom CNAME lookup.
func NewResolverWithLookup(lookup LookupCNAMEFunc, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.Noop()
	}
	return &Resolver{lookup: lookup, log: log}
}

// Hostname returns the public hostname of an App.
func Hostname(app string) string {
	return app + "." + AppDomain
}

// Resolve returns the region of app, or false when it can't be determined.
// Lookup failures are not retried and look the same as a missing record.
func (r *Resolver) Resolve(ctx context.Context, app string) (string, bool) {
	host := Hostname(app)

	target, err := r.lookup(ctx, host)
	if err != nil {
		r.log.Debug("CNAME lookup for %s failed: %v", host, err)
		return "", false
	}

	target = strings.TrimSuffix(target, ".")
	// The resolver answers with the queried name when there's no CNAME.
	if target == "" || strings.EqualFold(target, host) {
		r.log.Debug("no CNAME record for %s", host)
		return "", false
	}

	region, ok := FromTarget(target)
	if !ok {
		r.log.Debug("CNAME target %q for %s has no region label", target, host)
		return "", false
	}

	r.log.Debug("%s -> %s (region %s)", host, target, region)
	return region, true
}

// FromTarget extracts the region from a CNAME target: the second dot-separated label.
func FromTarget(target string) (string, bool) {
	parts := strings.Split(strings.TrimSuffix(target, "."), ".")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
