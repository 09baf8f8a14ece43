/*
Package observability provides lifecycle hooks for monitoring machines.

Metrics feeds Prometheus collectors from step events and LogHooks writes one
structured record per step. Both return domain.LifecycleHooks and can be
combined with LifecycleHooks.Merge.
*/
package observability
