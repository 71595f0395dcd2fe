package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidNamespace    = errors.New("invalid namespace")
	ErrNamespaceNotPresent = errors.New("namespace not present in context")

	namespacePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)
	tenantReplacer   = regexp.MustCompile(`[^a-z0-9_]+`)
)

// Namespace is the isolated storage context of one tenant. Every read and
// write of the custom field subsystem is scoped to exactly one namespace.
type Namespace string

func NewNamespace(value string) (Namespace, error) {
	if !namespacePattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNamespace, value)
	}
	return Namespace(value), nil
}

// NamespaceForTenant derives the namespace of a tenant identifier, e.g.
// "Acme-01" becomes "tenant_acme_01".
func NamespaceForTenant(tenantID string) (Namespace, error) {
	normalized := strings.ToLower(strings.TrimSpace(tenantID))
	normalized = strings.Trim(tenantReplacer.ReplaceAllString(normalized, "_"), "_")
	if normalized == "" {
		return "", fmt.Errorf("%w: empty tenant id", ErrInvalidNamespace)
	}
	return NewNamespace("tenant_" + normalized)
}

func (ns Namespace) String() string {
	return string(ns)
}

type NamespaceResolver interface {
	ResolveNamespace(ctx context.Context) (Namespace, error)
}

type namespaceCtxKey struct{}

func WithNamespace(ctx context.Context, ns Namespace) context.Context {
	return context.WithValue(ctx, namespaceCtxKey{}, ns)
}

func NamespaceFromContext(ctx context.Context) (Namespace, bool) {
	ns, ok := ctx.Value(namespaceCtxKey{}).(Namespace)
	return ns, ok
}

// ContextNamespaceResolver resolves the namespace previously attached to the
// request context by the tenant middleware.
type ContextNamespaceResolver struct{}

var _ NamespaceResolver = ContextNamespaceResolver{}

func (ContextNamespaceResolver) ResolveNamespace(ctx context.Context) (Namespace, error) {
	ns, ok := NamespaceFromContext(ctx)
	if !ok {
		return "", ErrNamespaceNotPresent
	}
	return ns, nil
}
