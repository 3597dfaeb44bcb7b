// Package core contains the canonical client domain: configuration, the
// session token slot, the endpoint table, and the request pipeline that
// normalizes vendor responses into typed results and classified errors.
// Transport adapters depend on this package; core must not depend on any
// concrete transport.
package core
